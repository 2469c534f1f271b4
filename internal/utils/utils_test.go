package utils

import (
	"reflect"
	"testing"
)

func TestStrSliceHas(t *testing.T) {
	slice := []string{"Main", "patch", "config"}
	if !StrSliceHas(slice, "patch") {
		t.Error("expected to find 'patch'")
	}
	if !StrSliceHas(slice, "MAIN") {
		t.Error("lookup should be case insensitive")
	}
	if StrSliceHas(slice, "missing") {
		t.Error("did not expect to find 'missing'")
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"duplicates removed", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"order preserved", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unique(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unique(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
