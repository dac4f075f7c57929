package request

type CenaRequest struct {
	IDFilme    string `json:"idFilme" validate:"required,uuid4"`
	Titulo     string `json:"titulo" validate:"required,min=1,max=200"`
	Descricao  string `json:"descricao" validate:"required"`
	Observacao string `json:"observacao"`
	Estrelas   int    `json:"estrelas" validate:"min=0,max=5"`
	URLFoto    string `json:"urlfoto" validate:"required,url"`
}
