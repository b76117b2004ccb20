package dictionary

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseTOML(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKeys []string
		wantVals []string
		wantErr  bool
		errText  string
	}{
		{
			name:     "simple pairs keep order",
			content:  "zeta = \"last\"\nalpha = 'first'\n",
			wantKeys: []string{"zeta", "alpha"},
			wantVals: []string{"last", "first"},
		},
		{
			name:     "quoted key with dots and comments",
			content:  "# menu entries\n\"menu.file\" = \"Plik\" # trailing\n",
			wantKeys: []string{"menu.file"},
			wantVals: []string{"Plik"},
		},
		{
			name:     "escapes are decoded",
			content:  `greeting = "Cześć\n"`,
			wantKeys: []string{"greeting"},
			wantVals: []string{"Cześć\n"},
		},
		{
			name:     "empty document",
			content:  "",
			wantKeys: nil,
		},
		{
			name:    "non-string value",
			content: "count = 3\n",
			wantErr: true,
			errText: `expected string value for key "count", got integer`,
		},
		{
			name:    "table",
			content: "[menu]\nfile = \"Plik\"\n",
			wantErr: true,
			errText: "table [menu] not supported",
		},
		{
			name:    "dotted key",
			content: "menu.file = \"Plik\"\n",
			wantErr: true,
			errText: "dotted key menu.file not supported",
		},
		{
			name:    "syntax error",
			content: "key = \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseTOML([]byte(tt.content))

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("Error = %v, want it to contain %q", err, tt.errText)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTOML failed: %v", err)
			}

			if !reflect.DeepEqual(keysOrNil(d), tt.wantKeys) {
				t.Errorf("Keys = %v, want %v", d.Keys(), tt.wantKeys)
			}
			for i, key := range tt.wantKeys {
				if got, _ := d.Get(key); got != tt.wantVals[i] {
					t.Errorf("%s = %q, want %q", key, got, tt.wantVals[i])
				}
			}
		})
	}
}

func keysOrNil(d *Dictionary) []string {
	if d.Len() == 0 {
		return nil
	}
	return d.Keys()
}

func TestMarshalTOML(t *testing.T) {
	d := New()
	d.Set("zeta", "Ende")
	d.Set("menu.file", "Datei")
	d.Set("quote", "it's")

	data, err := Marshal(d, FormatTOML, WriteOptions{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := "zeta = 'Ende'\n'menu.file' = 'Datei'\nquote = \"it's\"\n"
	if string(data) != want {
		t.Errorf("Marshal = %q, want %q", data, want)
	}

	back, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	if !reflect.DeepEqual(back.Keys(), d.Keys()) {
		t.Errorf("Keys after round trip = %v, want %v", back.Keys(), d.Keys())
	}
}

func TestWriteFile_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translated_de.toml")

	d := New()
	d.Set("greeting", "Hallo")
	if err := WriteFile(path, d, WriteOptions{}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if v, _ := got.Get("greeting"); v != "Hallo" {
		t.Errorf("greeting = %q, want Hallo", v)
	}
}
