package sideeffect

import "testing"

func TestStateEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "title", "title", true},
		{"different strings", "title", "other", false},
		{
			"equal nested sequences",
			[]map[string]string{{"foo": "bar"}},
			[]map[string]string{{"foo": "bar"}},
			true,
		},
		{
			"different map values",
			[]map[string]string{{"foo": "bar"}},
			[]map[string]string{{"foo": "baz"}},
			false,
		},
		{
			"different lengths",
			[]map[string]string{{"foo": "bar"}},
			[]map[string]string{{"foo": "bar"}, {"k": "v"}},
			false,
		},
		{"nil vs empty slice", []string(nil), []string{}, false},
		{"both nil", nil, nil, true},
		{"equal structs", struct{ N int }{1}, struct{ N int }{1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stateEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("stateEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
