package logbook

import (
	"testing"
)

func TestCollectionInsertIdempotent(t *testing.T) {
	col := NewCollection[Filme]()

	filme := Filme{ID: "f1", Titulo: "O Poderoso Chefão"}
	col.Insert(filme)
	col.Insert(filme)

	if col.Len() != 1 {
		t.Fatalf("Len = %d, want 1", col.Len())
	}
	if got := len(col.Records()); got != 1 {
		t.Fatalf("Records length = %d, want 1", got)
	}
}

func TestCollectionInsertReplaceKeepsPosition(t *testing.T) {
	col := NewCollection[Filme]()
	col.Insert(Filme{ID: "f1", Titulo: "Primeiro"})
	col.Insert(Filme{ID: "f2", Titulo: "Segundo"})

	// re-insert of f1 (race with bulk fetch) replaces in place
	col.Insert(Filme{ID: "f1", Titulo: "Primeiro v2"})

	recs := col.Records()
	if len(recs) != 2 {
		t.Fatalf("Records length = %d, want 2", len(recs))
	}
	if recs[0].ID != "f1" || recs[0].Titulo != "Primeiro v2" {
		t.Errorf("first record = %+v, want f1 at original position with new title", recs[0])
	}
	if recs[1].ID != "f2" {
		t.Errorf("second record = %+v, want f2", recs[1])
	}
}

func TestCollectionUpdateAbsentIsNoop(t *testing.T) {
	col := NewCollection[Resenha]()
	col.Update(Resenha{ID: "r1", Titulo: "fantasma"})

	if col.Len() != 0 {
		t.Fatalf("Len = %d, want 0 after update of absent id", col.Len())
	}
}

func TestCollectionDeleteAbsentIsNoop(t *testing.T) {
	col := NewCollection[Cena]()
	col.Insert(Cena{ID: "c1"})

	col.Delete("c2")
	col.Delete("c1")
	col.Delete("c1")

	if col.Len() != 0 {
		t.Fatalf("Len = %d, want 0", col.Len())
	}
}

func TestCollectionLastWriteWinsPerKey(t *testing.T) {
	col := NewCollection[Filme]()

	col.Insert(Filme{ID: "f1", Titulo: "v1"})
	col.Update(Filme{ID: "f1", Titulo: "v2"})
	col.Update(Filme{ID: "f1", Titulo: "v3"})

	got, ok := col.Get("f1")
	if !ok {
		t.Fatal("f1 missing")
	}
	if got.Titulo != "v3" {
		t.Errorf("Titulo = %q, want final write %q", got.Titulo, "v3")
	}
}

func TestCollectionResetReplacesEverything(t *testing.T) {
	col := NewCollection[Filme]()
	col.Insert(Filme{ID: "old"})

	col.Reset([]Filme{{ID: "a"}, {ID: "b"}})

	if col.Len() != 2 {
		t.Fatalf("Len = %d, want 2", col.Len())
	}
	if _, ok := col.Get("old"); ok {
		t.Error("record from before Reset still present")
	}
	recs := col.Records()
	if recs[0].ID != "a" || recs[1].ID != "b" {
		t.Errorf("order after Reset = [%s %s], want [a b]", recs[0].ID, recs[1].ID)
	}
}
