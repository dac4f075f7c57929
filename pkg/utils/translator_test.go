package utils

import (
	"testing"
)

func TestTraduzirErroExact(t *testing.T) {
	got := TraduzirErro("Invalid login credentials")
	want := "Email ou senha incorretos."
	if got != want {
		t.Fatalf("TraduzirErro = %q, want %q", got, want)
	}
}

func TestTraduzirErroCaseInsensitive(t *testing.T) {
	got := TraduzirErro("INVALID LOGIN CREDENTIALS")
	want := "Email ou senha incorretos."
	if got != want {
		t.Fatalf("TraduzirErro = %q, want %q", got, want)
	}
}

func TestTraduzirErroSubstring(t *testing.T) {
	got := TraduzirErro("auth error: invalid login credentials (code 400)")
	want := "Email ou senha incorretos."
	if got != want {
		t.Fatalf("TraduzirErro = %q, want %q", got, want)
	}
}

func TestTraduzirErroOverlappingKeysDeterministic(t *testing.T) {
	// "Email rate limit exceeded", "email rate limit exceeded" and
	// "rate limit exceeded" all match this message; the first entry in
	// table order must win, on every call.
	msg := "AuthApiError: email rate limit exceeded, retry later"
	want := "Muitas tentativas. Aguarde alguns minutos."

	for i := 0; i < 200; i++ {
		if got := TraduzirErro(msg); got != want {
			t.Fatalf("call %d: TraduzirErro = %q, want %q", i, got, want)
		}
	}
}

func TestTraduzirErroExactBeatsEarlierSubstring(t *testing.T) {
	// the all-lowercase variant is its own exact entry with a different
	// translation than the substring pass would pick
	got := TraduzirErro("email rate limit exceeded")
	want := "Limite de emails atingido. Aguarde alguns minutos e tente novamente."
	if got != want {
		t.Fatalf("TraduzirErro = %q, want %q", got, want)
	}
}

func TestTraduzirErroPassthrough(t *testing.T) {
	msg := "some message nobody translated"
	if got := TraduzirErro(msg); got != msg {
		t.Fatalf("TraduzirErro = %q, want passthrough %q", got, msg)
	}
}
