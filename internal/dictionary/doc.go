// Package dictionary reads and writes flat translation dictionaries and
// converts them to and from the ordered list of records that the translation
// pipeline works on. JSON is the primary format; files ending in .yaml or .yml
// are handled as flat YAML mappings and .toml files as top-level TOML pairs.
package dictionary
