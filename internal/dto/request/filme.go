package request

type FilmeRequest struct {
	Titulo         string `json:"titulo" validate:"required,min=1,max=200"`
	Genero         string `json:"genero" validate:"required"`
	Sinopse        string `json:"sinopse"`
	DataLancamento string `json:"datalancamento" validate:"required,datetime=02/01/2006"`
	URLFoto        string `json:"urlfoto" validate:"required,url"`
}
