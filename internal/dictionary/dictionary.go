package dictionary

// Record is a single key/value pair undergoing translation
type Record struct {
	Key   string
	Value string
}

// Dictionary is a string-to-string mapping that remembers key order
type Dictionary struct {
	keys   []string
	values map[string]string
}

// New creates an empty dictionary
func New() *Dictionary {
	return &Dictionary{
		values: make(map[string]string),
	}
}

// Set stores value under key. A new key is appended to the key order,
// an existing key keeps its position.
func (d *Dictionary) Set(key, value string) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key
func (d *Dictionary) Get(key string) (string, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Keys returns the keys in insertion order
func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of keys
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Map returns a copy of the dictionary as a plain map
func (d *Dictionary) Map() map[string]string {
	result := make(map[string]string, len(d.values))
	for k, v := range d.values {
		result[k] = v
	}
	return result
}

// Flatten produces one record per key, in the dictionary's key order
func Flatten(d *Dictionary) []Record {
	records := make([]Record, 0, d.Len())
	for _, key := range d.keys {
		records = append(records, Record{Key: key, Value: d.values[key]})
	}
	return records
}

// Unflatten folds records back into a dictionary. When a key repeats,
// the last record wins.
func Unflatten(records []Record) *Dictionary {
	d := New()
	for _, r := range records {
		d.Set(r.Key, r.Value)
	}
	return d
}
