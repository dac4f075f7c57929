// Package logbook is the client-side library for the movie logbook
// backend: typed models, synchronized in-memory collections fed by the
// realtime change feed, form controllers with the app's validation
// rules, and the photo upload pipeline.
package logbook

// Filme is the client-facing movie record.
type Filme struct {
	ID             string `json:"id"`
	Titulo         string `json:"titulo"`
	Genero         string `json:"genero"`
	Sinopse        string `json:"sinopse"`
	DataLancamento string `json:"datalancamento"`
	URLFoto        string `json:"urlfoto"`
}

func (f Filme) RecordKey() string { return f.ID }

// Resenha references its movie through IDFilme, the camel-cased wire
// name for the id_filme column.
type Resenha struct {
	ID       string `json:"id"`
	IDFilme  string `json:"idFilme"`
	Titulo   string `json:"titulo"`
	Texto    string `json:"texto"`
	Estrelas int    `json:"estrelas"`
}

func (r Resenha) RecordKey() string { return r.ID }

type Cena struct {
	ID         string `json:"id"`
	IDFilme    string `json:"idFilme"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	Observacao string `json:"observacao"`
	Estrelas   int    `json:"estrelas"`
	URLFoto    string `json:"urlfoto"`
}

func (c Cena) RecordKey() string { return c.ID }
