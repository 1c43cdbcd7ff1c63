package docfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pc1600ctl/internal/preset"
)

func sampleDocument() *preset.Document {
	return &preset.Document{
		Name:          "Mixer 16",
		GlobalChannel: 2,
		Params: map[string]int{
			"fader01_cc":    7,
			"button03_mode": 1,
		},
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(t.TempDir(), "preset"+ext)
		want := sampleDocument()
		if err := Write(path, want); err != nil {
			t.Fatalf("Write %s: %v", ext, err)
		}
		got, err := Read(path)
		if err != nil {
			t.Fatalf("Read %s: %v", ext, err)
		}
		if got.Name != want.Name || got.GlobalChannel != want.GlobalChannel {
			t.Fatalf("%s: metadata changed in round trip", ext)
		}
		for name, v := range want.Params {
			if got.Params[name] != v {
				t.Fatalf("%s: parameter %s = %d, want %d", ext, name, got.Params[name], v)
			}
		}
	}
}

func TestMarshalCarriesFileVersion(t *testing.T) {
	data, err := Marshal(sampleDocument())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"file_version": "`+FileVersion+`"`) {
		t.Fatalf("marshalled document is missing the file version:\n%s", data)
	}
}

func TestReadRejectsWrongFileVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	body := `{"file_version":"9.0.0","name":"x","global_channel":0,"params":{}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil || !strings.Contains(err.Error(), "file version") {
		t.Fatalf("want file version error, got %v", err)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Fatal("want parse error, got nil")
	}
}
