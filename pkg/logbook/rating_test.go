package logbook

import "testing"

func TestClampEstrelas(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 0},
		{-1, 0},
		{0, 0},
		{3, 3},
		{5, 5},
		{6, 5},
		{100, 5},
	}

	for _, tt := range tests {
		if got := ClampEstrelas(tt.in); got != tt.want {
			t.Errorf("ClampEstrelas(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSelecionarEstrela(t *testing.T) {
	tests := []struct {
		name        string
		atual       int
		selecionada int
		want        int
	}{
		{"pick new value", 0, 4, 4},
		{"pick same value toggles off", 4, 4, 0},
		{"pick different value replaces", 3, 5, 5},
		{"above max clamps first", 2, 9, 5},
		{"clamped value equal to current toggles off", 5, 9, 0},
		{"negative clamps to zero", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelecionarEstrela(tt.atual, tt.selecionada); got != tt.want {
				t.Errorf("SelecionarEstrela(%d, %d) = %d, want %d", tt.atual, tt.selecionada, got, tt.want)
			}
		})
	}
}
