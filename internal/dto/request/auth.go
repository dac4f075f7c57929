package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nome     string `json:"nome" validate:"required,min=2,max=100"`
	DataNasc string `json:"datanasc" validate:"omitempty,datetime=02/01/2006"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
