package request

type ResenhaRequest struct {
	IDFilme  string `json:"idFilme" validate:"required,uuid4"`
	Titulo   string `json:"titulo" validate:"required,min=1,max=200"`
	Texto    string `json:"texto" validate:"required"`
	Estrelas int    `json:"estrelas" validate:"min=0,max=5"`
}
