package schema

import (
	"testing"

	"github.com/ultimate-research/lvdfile"
)

func TestLookup(t *testing.T) {
	layout, ok := Lookup("vector2", 1)
	if !ok {
		t.Fatal("no layout for vector2 version 1")
	}
	if len(layout) != 2 || layout[0].Name != "x" || layout[1].Name != "y" {
		t.Errorf("unexpected vector2 layout: %v", layout)
	}
	if _, ok := Lookup("vector2", 2); ok {
		t.Error("vector2 version 2 should not exist")
	}
	if _, ok := Lookup("polygon", 1); ok {
		t.Error("unknown type should not resolve")
	}
}

func TestKnown(t *testing.T) {
	if !Known("collision") {
		t.Error("collision should be known")
	}
	if Known("polygon") {
		t.Error("polygon should not be known")
	}
}

func TestVersions(t *testing.T) {
	cases := map[string][]uint8{
		"collision": {1, 2, 3, 4},
		"shape2":    {3},
		"point":     {1, 2},
		"polygon":   nil,
	}
	for typ, want := range cases {
		got := Versions(typ)
		if len(got) != len(want) {
			t.Errorf("Versions(%q) = %v, want %v", typ, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Versions(%q) = %v, want %v", typ, got, want)
				break
			}
		}
	}
}

// Version sets need not be contiguous; ptrainer_range skips 2 and 3.
func TestNonContiguousVersions(t *testing.T) {
	if _, ok := Lookup("ptrainer_range", 1); !ok {
		t.Error("ptrainer_range version 1 missing")
	}
	if _, ok := Lookup("ptrainer_range", 4); !ok {
		t.Error("ptrainer_range version 4 missing")
	}
	for _, v := range []uint8{2, 3} {
		if _, ok := Lookup("ptrainer_range", v); ok {
			t.Errorf("ptrainer_range version %d should not exist", v)
		}
	}
}

func TestLayoutField(t *testing.T) {
	layout, _ := Lookup("collision", 4)
	f, ok := layout.Field("spirits_floors")
	if !ok {
		t.Fatal("collision version 4 has no spirits_floors field")
	}
	if f.Kind != lvdfile.KindContainer || f.Type != "collision_spirits_floor" {
		t.Errorf("unexpected field: %+v", f)
	}
	if _, ok := layout.Field("nope"); ok {
		t.Error("lookup of absent field succeeded")
	}
}

func TestEnvelopeVersions(t *testing.T) {
	counts := map[uint8]int{
		1: 6, 2: 7, 3: 11, 4: 12, 5: 13, 6: 15, 7: 16, 8: 17,
		9: 18, 10: 19, 11: 21, 12: 22, 13: 23,
	}
	for version, want := range counts {
		layout, ok := Lookup(EnvelopeType, version)
		if !ok {
			t.Errorf("no envelope layout for version %d", version)
			continue
		}
		if len(layout) != want {
			t.Errorf("envelope version %d has %d sections, want %d", version, len(layout), want)
		}
	}
	if _, ok := Lookup(EnvelopeType, 14); ok {
		t.Error("envelope version 14 should not exist")
	}

	// Version 12 inserts the ptrainer_ranges section mid-list rather than
	// appending it.
	layout, _ := Lookup(EnvelopeType, 12)
	if layout[13].Name != "ptrainer_ranges" || layout[14].Name != "general_shapes2" {
		t.Errorf("unexpected version 12 section order around index 13: %s, %s",
			layout[13].Name, layout[14].Name)
	}
	layout, _ = Lookup(EnvelopeType, 13)
	if layout[14].Name != "ptrainer_floating_floors" {
		t.Errorf("version 13 section 14 = %s, want ptrainer_floating_floors", layout[14].Name)
	}
}

// Every layout in the registry must be internally consistent: unique field
// names, and every referenced child type registered.
func TestRegistryConsistency(t *testing.T) {
	for typ, versions := range registry {
		for version, layout := range versions {
			names := make(map[string]bool, len(layout))
			for _, f := range layout {
				if names[f.Name] {
					t.Errorf("%s.%d: duplicate field %q", typ, version, f.Name)
				}
				names[f.Name] = true

				switch f.Kind {
				case lvdfile.KindNode:
					if !Known(f.Type) {
						t.Errorf("%s.%d: field %q references unknown type %q", typ, version, f.Name, f.Type)
					}
				case lvdfile.KindContainer:
					if f.Elem == lvdfile.KindInvalid || f.Elem == lvdfile.KindContainer {
						t.Errorf("%s.%d: field %q has invalid element kind %s", typ, version, f.Name, f.Elem)
					}
					if f.Elem == lvdfile.KindNode && !Known(f.Type) {
						t.Errorf("%s.%d: field %q references unknown element type %q", typ, version, f.Name, f.Type)
					}
				case lvdfile.KindInvalid:
					t.Errorf("%s.%d: field %q has invalid kind", typ, version, f.Name)
				default:
					if f.Type != "" {
						t.Errorf("%s.%d: scalar field %q carries node type %q", typ, version, f.Name, f.Type)
					}
				}
			}
		}
	}
}
