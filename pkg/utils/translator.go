package utils

import (
	"strings"
)

type traducao struct {
	ingles    string
	portugues string
}

// backend error messages mapped to the pt-BR strings shown to the user.
// Order matters: the case-insensitive and substring passes take the
// first entry that matches, so overlapping keys ("Email rate limit
// exceeded" vs "rate limit exceeded") resolve the same way every call.
var traducoes = []traducao{
	// auth
	{"Invalid login credentials", "Email ou senha incorretos."},
	{"Email not confirmed", "Email não confirmado. Verifique sua caixa de entrada."},
	{"Invalid email or password", "Email ou senha inválidos."},
	{"User not found", "Usuário não encontrado."},
	{"Email address is invalid", "Formato de email inválido."},
	{"Password should be at least 6 characters", "A senha deve ter pelo menos 6 caracteres."},
	{"User already registered", "Este email já está cadastrado."},
	{"Email rate limit exceeded", "Muitas tentativas. Aguarde alguns minutos."},
	{"For security purposes, you can only request this once every 60 seconds", "Por segurança, aguarde 60 segundos para tentar novamente."},

	// rate limits
	{"email rate limit exceeded", "Limite de emails atingido. Aguarde alguns minutos e tente novamente."},
	{"rate limit exceeded", "Muitas tentativas. Aguarde alguns minutos."},
	{"over_email_send_rate_limit", "Limite de emails atingido. Aguarde alguns minutos."},

	// network
	{"Network request failed", "Erro de conexão. Verifique sua internet."},
	{"Failed to fetch", "Falha na conexão. Verifique sua internet."},

	// signup
	{"Signup requires a valid password", "A senha é obrigatória para o cadastro."},
	{"Unable to validate email address: invalid format", "Formato de email inválido."},
	{"A user with this email address has already been registered", "Este email já está cadastrado."},

	// general
	{"Request timeout", "Tempo esgotado. Tente novamente."},
	{"Server error", "Erro no servidor. Tente novamente mais tarde."},
}

// exact-match fast path
var traducoesExatas = func() map[string]string {
	m := make(map[string]string, len(traducoes))
	for _, t := range traducoes {
		m[t.ingles] = t.portugues
	}
	return m
}()

// TraduzirErro maps a backend error message to its pt-BR translation.
// Lookup order: exact match, case-insensitive exact match, then substring
// match, each pass taking the first matching entry in table order.
// Messages without a translation pass through unchanged.
func TraduzirErro(mensagem string) string {
	if t, ok := traducoesExatas[mensagem]; ok {
		return t
	}

	mensagemLower := strings.ToLower(mensagem)

	for _, t := range traducoes {
		if strings.ToLower(t.ingles) == mensagemLower {
			return t.portugues
		}
	}

	for _, t := range traducoes {
		if strings.Contains(mensagemLower, strings.ToLower(t.ingles)) {
			return t.portugues
		}
	}

	return mensagem
}
