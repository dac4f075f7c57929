package logbook

// FilmeNaoDisponivel is shown while a referenced movie has not arrived
// in the local collection yet (or was deleted elsewhere).
const FilmeNaoDisponivel = "Filme não disponível"

// FilmeResolver resolves idFilme references against the synchronized
// movie collection. A missing movie is not an error: the feeds of two
// tables carry no relative ordering, so a scene can show up before its
// movie does.
type FilmeResolver struct {
	filmes *Syncer[Filme]
}

func NewFilmeResolver(filmes *Syncer[Filme]) *FilmeResolver {
	return &FilmeResolver{filmes: filmes}
}

// Titulo returns the referenced movie's title, or the placeholder when
// the movie is not present locally.
func (r *FilmeResolver) Titulo(idFilme string) string {
	filme, ok := r.filmes.Get(idFilme)
	if !ok {
		return FilmeNaoDisponivel
	}
	return filme.Titulo
}
