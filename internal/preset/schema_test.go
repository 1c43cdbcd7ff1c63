package preset

import "testing"

func TestSchemaCoversStreamExactly(t *testing.T) {
	if err := checkCoverage(Schema); err != nil {
		t.Fatalf("schema coverage: %v", err)
	}
}

func TestSchemaNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Schema {
		if f.Kind == KindReserved {
			if f.Name != "" {
				t.Fatalf("reserved field at bit %d has a name (%q)", f.Offset, f.Name)
			}
			continue
		}
		if f.Name == "" {
			t.Fatalf("unnamed field at bit %d", f.Offset)
		}
		if seen[f.Name] {
			t.Fatalf("duplicate field name %q", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestSchemaEnumLabelsMatchRanges(t *testing.T) {
	for _, f := range Schema {
		if f.Kind != KindEnum {
			continue
		}
		if len(f.Labels) != f.Max-f.Min+1 {
			t.Fatalf("field %q: %d labels for range %d-%d", f.Name, len(f.Labels), f.Min, f.Max)
		}
	}
}
