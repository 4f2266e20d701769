package models

import (
	"reflect"
	"sort"
	"testing"
)

func TestNormalizeCrops(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want []interface{}
	}{
		{"absent", nil, []interface{}{}},
		{"list", []interface{}{1.0, 2.0, 3.0}, []interface{}{1.0, 2.0, 3.0}},
		{"scalar string", "tomato", []interface{}{}},
		{"scalar number", 42.0, []interface{}{}},
		{"scalar bool", true, []interface{}{}},
	}

	for _, tt := range tests {
		got := NormalizeCrops(tt.raw)
		if got == nil {
			t.Errorf("%s: expected non-nil slice", tt.name)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: NormalizeCrops = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeCropsMapping(t *testing.T) {
	raw := map[string]interface{}{"a": 1.0, "b": 2.0}

	got := NormalizeCrops(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %d", len(got))
	}

	// Map iteration order is unspecified; compare sorted
	values := []float64{got[0].(float64), got[1].(float64)}
	sort.Float64s(values)
	if values[0] != 1.0 || values[1] != 2.0 {
		t.Errorf("unexpected values: %v", values)
	}
}

func TestIsCropAdmin(t *testing.T) {
	tests := []struct {
		name   string
		claims map[string]interface{}
		want   bool
	}{
		{"no claims", nil, false},
		{"marker true", map[string]interface{}{CropAdminClaim: true}, true},
		{"marker false", map[string]interface{}{CropAdminClaim: false}, false},
		{"marker wrong type", map[string]interface{}{CropAdminClaim: "true"}, false},
		{"other claims only", map[string]interface{}{"region": "pt"}, false},
	}

	for _, tt := range tests {
		identity := Identity{UID: "u1", CustomClaims: tt.claims}
		if got := identity.IsCropAdmin(); got != tt.want {
			t.Errorf("%s: IsCropAdmin = %v, want %v", tt.name, got, tt.want)
		}
	}
}
