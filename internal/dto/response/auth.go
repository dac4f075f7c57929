package response

import (
	"time"

	"movie-logbook/internal/data/entity"
)

type AuthResponse struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	DataNasc  string    `json:"datanasc"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User, perfil *entity.Perfil) UserResponse {
	resp := UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	if perfil != nil {
		resp.Nome = perfil.Nome
		resp.DataNasc = perfil.DataNasc
	}

	return resp
}

func AuthToResponse(user *entity.User, perfil *entity.Perfil, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
	}

	if perfil != nil {
		resp.Nome = perfil.Nome
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
