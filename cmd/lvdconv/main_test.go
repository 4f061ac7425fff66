package main

import (
	"encoding/binary"
	"testing"
)

func TestSwapExt(t *testing.T) {
	cases := []struct {
		path, ext, want string
	}{
		{"stage.lvd", ".yaml", "stage.yaml"},
		{"stage.yaml", ".lvd", "stage.lvd"},
		{"dir/stage00.lvd", ".yaml", "dir/stage00.yaml"},
		{"stage", ".yaml", "stage.yaml"},
	}
	for _, c := range cases {
		if got := swapExt(c.path, c.ext); got != c.want {
			t.Errorf("swapExt(%q, %q) = %q, want %q", c.path, c.ext, got, c.want)
		}
	}
}

func TestIsYAML(t *testing.T) {
	for path, want := range map[string]bool{
		"stage.yaml": true,
		"stage.yml":  true,
		"stage.YAML": true,
		"stage.lvd":  false,
		"stage":      false,
	} {
		if got := isYAML(path); got != want {
			t.Errorf("isYAML(%q) = %t, want %t", path, got, want)
		}
	}
}

func TestByteOrder(t *testing.T) {
	if order, err := byteOrder("big"); err != nil || order != binary.BigEndian {
		t.Errorf("byteOrder(big) = %v, %v", order, err)
	}
	if order, err := byteOrder("little"); err != nil || order != binary.LittleEndian {
		t.Errorf("byteOrder(little) = %v, %v", order, err)
	}
	if _, err := byteOrder("middle"); err == nil {
		t.Error("byteOrder(middle) should fail")
	}
}
