package logbook

import "testing"

func TestMaskDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "12/3"},
		{"1205", "12/05"},
		{"12052", "12/05/2"},
		{"12052024", "12/05/2024"},
		{"120520249", "12/05/2024"},
		{"12/05/2024", "12/05/2024"},
		{"12a05b2024", "12/05/2024"},
		{"ab", ""},
	}

	for _, tt := range tests {
		if got := MaskDate(tt.in); got != tt.want {
			t.Errorf("MaskDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12/05/2024", true},
		{"29/02/2024", true},
		{"29/02/2023", false},
		{"31/04/2024", false},
		{"12/05/24", false},
		{"12/05", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDate(tt.in); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
