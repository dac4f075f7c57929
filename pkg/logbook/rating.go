package logbook

// MaxEstrelas is the upper bound of the star rating scale.
const MaxEstrelas = 5

// ClampEstrelas forces a rating into [0, MaxEstrelas].
func ClampEstrelas(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxEstrelas {
		return MaxEstrelas
	}
	return n
}

// SelecionarEstrela applies the tap-a-star gesture: picking the value
// already set clears the rating back to 0, anything else becomes the
// new (clamped) value.
func SelecionarEstrela(atual, selecionada int) int {
	selecionada = ClampEstrelas(selecionada)
	if selecionada == atual {
		return 0
	}
	return selecionada
}
