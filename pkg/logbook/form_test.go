package logbook

import (
	"context"
	"errors"
	"testing"

	"movie-logbook/pkg/feed"
)

type fakeWriter struct {
	created int
	updated int
	err     error
}

func (f *fakeWriter) CreateFilme(_ context.Context, filme Filme) (Filme, error) {
	f.created++
	return filme, f.err
}

func (f *fakeWriter) UpdateFilme(_ context.Context, filme Filme) (Filme, error) {
	f.updated++
	return filme, f.err
}

func (f *fakeWriter) CreateResenha(_ context.Context, resenha Resenha) (Resenha, error) {
	f.created++
	return resenha, f.err
}

func (f *fakeWriter) UpdateResenha(_ context.Context, resenha Resenha) (Resenha, error) {
	f.updated++
	return resenha, f.err
}

func (f *fakeWriter) CreateCena(_ context.Context, cena Cena) (Cena, error) {
	f.created++
	return cena, f.err
}

func (f *fakeWriter) UpdateCena(_ context.Context, cena Cena) (Cena, error) {
	f.updated++
	return cena, f.err
}

func filmesWith(t *testing.T, filmes ...Filme) *Syncer[Filme] {
	t.Helper()
	s := NewSyncer[Filme](feed.TableFilmes)
	if err := s.Load(context.Background(), func(context.Context) ([]Filme, error) {
		return filmes, nil
	}); err != nil {
		t.Fatalf("seed filmes: %v", err)
	}
	return s
}

func TestFilmeFormFirstFailingCheckWins(t *testing.T) {
	tests := []struct {
		name  string
		draft Filme
		want  error
	}{
		{"empty draft", Filme{}, ErrFilmeSemTitulo},
		{"missing genero", Filme{Titulo: "t"}, ErrFilmeSemGenero},
		{"missing data", Filme{Titulo: "t", Genero: "Drama"}, ErrFilmeSemData},
		{"missing foto", Filme{Titulo: "t", Genero: "Drama", DataLancamento: "01/01/2020"}, ErrFilmeSemFoto},
		{"complete", Filme{Titulo: "t", Genero: "Drama", DataLancamento: "01/01/2020", URLFoto: "http://x/f.jpg"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewFilmeForm(&fakeWriter{})
			form.Draft = tt.draft
			if err := form.Verificar(); !errors.Is(err, tt.want) {
				t.Errorf("Verificar() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFilmeFormInsertVsUpdate(t *testing.T) {
	api := &fakeWriter{}
	form := NewFilmeForm(api)
	form.Draft = Filme{Titulo: "t", Genero: "Drama", DataLancamento: "01/01/2020", URLFoto: "http://x/f.jpg"}

	msg, err := form.Salvar(context.Background())
	if err != nil {
		t.Fatalf("Salvar (insert): %v", err)
	}
	if msg != "Filme adicionado com sucesso!" {
		t.Errorf("insert message = %q", msg)
	}
	if api.created != 1 || api.updated != 0 {
		t.Fatalf("created=%d updated=%d, want insert path", api.created, api.updated)
	}
	if form.Draft != (Filme{}) {
		t.Error("draft not cleared after save")
	}

	form.Editar(Filme{ID: "f1", Titulo: "t", Genero: "Drama", DataLancamento: "01/01/2020", URLFoto: "http://x/f.jpg"})
	msg, err = form.Salvar(context.Background())
	if err != nil {
		t.Fatalf("Salvar (update): %v", err)
	}
	if msg != "Filme editado com sucesso!" {
		t.Errorf("update message = %q", msg)
	}
	if api.updated != 1 {
		t.Errorf("updated = %d, want 1", api.updated)
	}
}

func TestFilmeFormKeepsDraftOnServerError(t *testing.T) {
	api := &fakeWriter{err: errors.New("Credenciais de login inválidas")}
	form := NewFilmeForm(api)
	form.Draft = Filme{Titulo: "t", Genero: "Drama", DataLancamento: "01/01/2020", URLFoto: "http://x/f.jpg"}

	if _, err := form.Salvar(context.Background()); err == nil {
		t.Fatal("Salvar should surface the server error")
	}
	if form.Draft.Titulo != "t" {
		t.Error("draft was cleared despite the failed save")
	}
}

func TestResenhaFormGateWithoutFilmes(t *testing.T) {
	form := NewResenhaForm(&fakeWriter{}, filmesWith(t))

	if err := form.Abrir(); !errors.Is(err, ErrSemFilmesParaResenha) {
		t.Errorf("Abrir() = %v, want %v", err, ErrSemFilmesParaResenha)
	}

	withMovies := NewResenhaForm(&fakeWriter{}, filmesWith(t, Filme{ID: "f1"}))
	if err := withMovies.Abrir(); err != nil {
		t.Errorf("Abrir() with movies = %v, want nil", err)
	}
}

func TestResenhaFormValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft Resenha
		want  error
	}{
		{"sentinel movie id", Resenha{IDFilme: SemFilme}, ErrResenhaSemFilme},
		{"empty movie id", Resenha{}, ErrResenhaSemFilme},
		{"missing titulo", Resenha{IDFilme: "f1"}, ErrResenhaSemTitulo},
		{"missing texto", Resenha{IDFilme: "f1", Titulo: "t"}, ErrResenhaSemTexto},
		{"complete", Resenha{IDFilme: "f1", Titulo: "t", Texto: "x"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewResenhaForm(&fakeWriter{}, filmesWith(t, Filme{ID: "f1"}))
			form.Draft = tt.draft
			if err := form.Verificar(); !errors.Is(err, tt.want) {
				t.Errorf("Verificar() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResenhaFormLimparResetsDefaults(t *testing.T) {
	form := NewResenhaForm(&fakeWriter{}, filmesWith(t, Filme{ID: "f1"}))
	form.Draft = Resenha{ID: "r1", IDFilme: "f1", Titulo: "t", Texto: "x", Estrelas: 4}

	form.Limpar()

	if form.Draft.IDFilme != SemFilme {
		t.Errorf("IDFilme after Limpar = %q, want sentinel %q", form.Draft.IDFilme, SemFilme)
	}
	if form.Draft.Estrelas != 0 {
		t.Errorf("Estrelas after Limpar = %d, want 0", form.Draft.Estrelas)
	}
	if form.Draft.ID != "" {
		t.Error("ID survived Limpar")
	}
}

func TestCenaFormValidationRequiresFoto(t *testing.T) {
	form := NewCenaForm(&fakeWriter{}, filmesWith(t, Filme{ID: "f1"}))
	form.Draft = Cena{IDFilme: "f1", Titulo: "t", Descricao: "d"}

	if err := form.Verificar(); !errors.Is(err, ErrCenaSemFoto) {
		t.Errorf("Verificar() = %v, want %v", err, ErrCenaSemFoto)
	}

	form.Draft.URLFoto = "http://x/c.jpg"
	if err := form.Verificar(); err != nil {
		t.Errorf("Verificar() with foto = %v, want nil", err)
	}
}

func TestCenaFormStarToggle(t *testing.T) {
	form := NewCenaForm(&fakeWriter{}, filmesWith(t, Filme{ID: "f1"}))

	form.SetEstrelas(3)
	if form.Draft.Estrelas != 3 {
		t.Fatalf("Estrelas = %d, want 3", form.Draft.Estrelas)
	}
	form.SetEstrelas(3)
	if form.Draft.Estrelas != 0 {
		t.Errorf("Estrelas = %d, want 0 after tapping the same star", form.Draft.Estrelas)
	}
}
