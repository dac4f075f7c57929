package logbook

import (
	"context"
	"errors"
)

// SemFilme is the sentinel meaning "no movie selected" in review and
// scene drafts.
const SemFilme = "0"

// PlaceholderFotoURL is the image shown before the user picks a photo.
const PlaceholderFotoURL = "https://cdn-icons-png.flaticon.com/512/723/723082.png"

// Validation stops at the first failing check: the user fixes one field
// at a time.
var (
	ErrFilmeSemTitulo = errors.New("O título é obrigatório para salvar o filme.")
	ErrFilmeSemGenero = errors.New("O gênero é obrigatório para salvar o filme.")
	ErrFilmeSemData   = errors.New("A data de lançamento é obrigatória para salvar o filme.")
	ErrFilmeSemFoto   = errors.New("É necessário uma foto do filme para salvar.")

	ErrResenhaSemFilme  = errors.New("Selecione um filme para criar a resenha.")
	ErrResenhaSemTitulo = errors.New("O título é obrigatório.")
	ErrResenhaSemTexto  = errors.New("O texto da resenha é obrigatório.")

	ErrCenaSemFilme     = errors.New("O filme é obrigatório para salvar a cena.")
	ErrCenaSemTitulo    = errors.New("O título é obrigatório para salvar a cena.")
	ErrCenaSemDescricao = errors.New("A descrição é obrigatória para salvar a cena.")
	ErrCenaSemFoto      = errors.New("É necessário uma foto da cena para salvar.")

	ErrSemFilmesParaResenha = errors.New("Nenhum filme cadastrado. Cadastre um filme primeiro para criar resenhas.")
	ErrSemFilmesParaCena    = errors.New("Nenhum filme cadastrado. Cadastre um filme primeiro para adicionar cenas.")
)

type FilmeWriter interface {
	CreateFilme(ctx context.Context, filme Filme) (Filme, error)
	UpdateFilme(ctx context.Context, filme Filme) (Filme, error)
}

type ResenhaWriter interface {
	CreateResenha(ctx context.Context, resenha Resenha) (Resenha, error)
	UpdateResenha(ctx context.Context, resenha Resenha) (Resenha, error)
}

type CenaWriter interface {
	CreateCena(ctx context.Context, cena Cena) (Cena, error)
	UpdateCena(ctx context.Context, cena Cena) (Cena, error)
}

// FilmeForm holds the draft of one movie being created or edited. Save
// inserts when the draft has no id yet, updates otherwise, and clears
// the draft on success.
type FilmeForm struct {
	Draft Filme
	api   FilmeWriter
}

func NewFilmeForm(api FilmeWriter) *FilmeForm {
	return &FilmeForm{api: api}
}

// Editar loads an existing record into the draft.
func (f *FilmeForm) Editar(filme Filme) {
	f.Draft = filme
}

func (f *FilmeForm) Verificar() error {
	if f.Draft.Titulo == "" {
		return ErrFilmeSemTitulo
	}
	if f.Draft.Genero == "" {
		return ErrFilmeSemGenero
	}
	if f.Draft.DataLancamento == "" {
		return ErrFilmeSemData
	}
	if f.Draft.URLFoto == "" {
		return ErrFilmeSemFoto
	}
	return nil
}

func (f *FilmeForm) Salvar(ctx context.Context) (string, error) {
	if err := f.Verificar(); err != nil {
		return "", err
	}

	if f.Draft.ID == "" {
		if _, err := f.api.CreateFilme(ctx, f.Draft); err != nil {
			return "", err
		}
		f.Limpar()
		return "Filme adicionado com sucesso!", nil
	}

	if _, err := f.api.UpdateFilme(ctx, f.Draft); err != nil {
		return "", err
	}
	f.Limpar()
	return "Filme editado com sucesso!", nil
}

func (f *FilmeForm) Limpar() {
	f.Draft = Filme{}
}

// ResenhaForm is gated on the movie collection: with no movies there is
// nothing a review could reference, so the form refuses to open.
type ResenhaForm struct {
	Draft  Resenha
	api    ResenhaWriter
	filmes *Syncer[Filme]
}

func NewResenhaForm(api ResenhaWriter, filmes *Syncer[Filme]) *ResenhaForm {
	f := &ResenhaForm{api: api, filmes: filmes}
	f.Limpar()
	return f
}

// Abrir reports whether the form may be shown at all.
func (f *ResenhaForm) Abrir() error {
	if f.filmes.Len() == 0 {
		return ErrSemFilmesParaResenha
	}
	return nil
}

func (f *ResenhaForm) Editar(resenha Resenha) {
	f.Draft = resenha
}

// SetEstrelas applies the star-tap gesture to the draft.
func (f *ResenhaForm) SetEstrelas(n int) {
	f.Draft.Estrelas = SelecionarEstrela(f.Draft.Estrelas, n)
}

func (f *ResenhaForm) Verificar() error {
	if f.Draft.IDFilme == "" || f.Draft.IDFilme == SemFilme {
		return ErrResenhaSemFilme
	}
	if f.Draft.Titulo == "" {
		return ErrResenhaSemTitulo
	}
	if f.Draft.Texto == "" {
		return ErrResenhaSemTexto
	}
	return nil
}

func (f *ResenhaForm) Salvar(ctx context.Context) (string, error) {
	if err := f.Verificar(); err != nil {
		return "", err
	}

	f.Draft.Estrelas = ClampEstrelas(f.Draft.Estrelas)

	if f.Draft.ID == "" {
		if _, err := f.api.CreateResenha(ctx, f.Draft); err != nil {
			return "", err
		}
		f.Limpar()
		return "Resenha adicionada com sucesso!", nil
	}

	if _, err := f.api.UpdateResenha(ctx, f.Draft); err != nil {
		return "", err
	}
	f.Limpar()
	return "Resenha editada com sucesso!", nil
}

func (f *ResenhaForm) Limpar() {
	f.Draft = Resenha{IDFilme: SemFilme}
}

// CenaForm mirrors ResenhaForm with the scene's field set, including
// the mandatory photo.
type CenaForm struct {
	Draft  Cena
	api    CenaWriter
	filmes *Syncer[Filme]
}

func NewCenaForm(api CenaWriter, filmes *Syncer[Filme]) *CenaForm {
	f := &CenaForm{api: api, filmes: filmes}
	f.Limpar()
	return f
}

func (f *CenaForm) Abrir() error {
	if f.filmes.Len() == 0 {
		return ErrSemFilmesParaCena
	}
	return nil
}

func (f *CenaForm) Editar(cena Cena) {
	f.Draft = cena
}

func (f *CenaForm) SetEstrelas(n int) {
	f.Draft.Estrelas = SelecionarEstrela(f.Draft.Estrelas, n)
}

func (f *CenaForm) Verificar() error {
	if f.Draft.IDFilme == "" || f.Draft.IDFilme == SemFilme {
		return ErrCenaSemFilme
	}
	if f.Draft.Titulo == "" {
		return ErrCenaSemTitulo
	}
	if f.Draft.Descricao == "" {
		return ErrCenaSemDescricao
	}
	if f.Draft.URLFoto == "" {
		return ErrCenaSemFoto
	}
	return nil
}

func (f *CenaForm) Salvar(ctx context.Context) (string, error) {
	if err := f.Verificar(); err != nil {
		return "", err
	}

	f.Draft.Estrelas = ClampEstrelas(f.Draft.Estrelas)

	if f.Draft.ID == "" {
		if _, err := f.api.CreateCena(ctx, f.Draft); err != nil {
			return "", err
		}
		f.Limpar()
		return "Cena adicionada com sucesso!", nil
	}

	if _, err := f.api.UpdateCena(ctx, f.Draft); err != nil {
		return "", err
	}
	f.Limpar()
	return "Cena editada com sucesso!", nil
}

func (f *CenaForm) Limpar() {
	f.Draft = Cena{IDFilme: SemFilme}
}
