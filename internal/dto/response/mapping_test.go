package response

import (
	"encoding/json"
	"testing"
	"time"

	"movie-logbook/internal/data/entity"

	"github.com/google/uuid"
)

func TestResenhaColumnToFieldMapping(t *testing.T) {
	resenha := &entity.Resenha{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		IDFilme:    uuid.New(),
		Titulo:     "Ótimo filme",
		Texto:      "Gostei muito.",
		Estrelas:   4,
	}

	raw, err := json.Marshal(ResenhaToResponse(resenha))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// column is id_filme, wire field must be idFilme
	if _, ok := fields["id_filme"]; ok {
		t.Fatal("wire shape leaked the id_filme column name")
	}
	if got := fields["idFilme"]; got != resenha.IDFilme.String() {
		t.Fatalf("idFilme = %v, want %v", got, resenha.IDFilme.String())
	}
}

func TestResenhaRoundTrip(t *testing.T) {
	resenha := &entity.Resenha{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		IDFilme:    uuid.New(),
		Titulo:     "Titulo",
		Texto:      "Texto",
		Estrelas:   5,
	}

	raw, err := json.Marshal(ResenhaToResponse(resenha))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back ResenhaResponse
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.ID != resenha.ID.String() ||
		back.IDFilme != resenha.IDFilme.String() ||
		back.Titulo != resenha.Titulo ||
		back.Texto != resenha.Texto ||
		back.Estrelas != resenha.Estrelas {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestCenaRoundTrip(t *testing.T) {
	cena := &entity.Cena{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		IDFilme:    uuid.New(),
		Titulo:     "Cena final",
		Descricao:  "A despedida",
		Observacao: "rever",
		Estrelas:   3,
		URLFoto:    "http://localhost:8080/storage/imagens/u/1.jpg",
	}

	raw, err := json.Marshal(CenaToResponse(cena))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := fields["id_filme"]; ok {
		t.Fatal("wire shape leaked the id_filme column name")
	}

	var back CenaResponse
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != CenaToResponse(cena) {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestFilmeRoundTrip(t *testing.T) {
	filme := &entity.Filme{
		BaseSimple:     entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:         uuid.New(),
		Titulo:         "O Filme",
		Genero:         "Drama",
		Sinopse:        "sinopse",
		DataLancamento: "25/12/2023",
		URLFoto:        "http://localhost:8080/storage/imagens/u/2.png",
	}

	raw, err := json.Marshal(FilmeToResponse(filme))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back FilmeResponse
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != FilmeToResponse(filme) {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
