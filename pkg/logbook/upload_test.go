package logbook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeSink struct {
	name        string
	data        []byte
	contentType string
	url         string
	err         error
}

func (s *fakeSink) UploadImagem(_ context.Context, name string, data []byte, contentType string) (string, error) {
	s.name = name
	s.data = data
	s.contentType = contentType
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func failingRead(_ context.Context, _ string) ([]byte, error) {
	return nil, errors.New("ler arquivo: permission denied")
}

func TestEnviarFilesystemRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foto.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	sink := &fakeSink{url: "http://cdn/imagens/u1/1.png"}
	up := NewUploaderWith(sink, LerArquivo)

	url, err := up.Enviar(context.Background(), path, "u1", nil)
	if err != nil {
		t.Fatalf("Enviar: %v", err)
	}
	if url != sink.url {
		t.Errorf("url = %q, want %q", url, sink.url)
	}
	if string(sink.data) != "png-bytes" {
		t.Errorf("uploaded data = %q", sink.data)
	}
	if sink.contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", sink.contentType)
	}
	if !strings.HasPrefix(sink.name, "u1/") || !strings.HasSuffix(sink.name, ".png") {
		t.Errorf("object name = %q, want u1/<millis>.png", sink.name)
	}
}

func TestEnviarNetworkFallbackAfterFilesystemFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpg-bytes"))
	}))
	defer srv.Close()

	sink := &fakeSink{url: "http://cdn/imagens/u1/1.jpg"}
	up := NewUploaderWith(sink, failingRead, BuscarHTTP(srv.Client()))

	var reports []int
	url, err := up.Enviar(context.Background(), srv.URL+"/foto.JPG?token=abc", "u1", func(pct int) {
		reports = append(reports, pct)
	})
	if err != nil {
		t.Fatalf("Enviar: %v", err)
	}
	if url != sink.url {
		t.Errorf("url = %q, want %q", url, sink.url)
	}
	if sink.contentType != "image/jpeg" {
		t.Errorf("contentType = %q, want image/jpeg after .JPG?token normalization", sink.contentType)
	}
	if !strings.HasSuffix(sink.name, ".jpg") {
		t.Errorf("object name = %q, want .jpg extension", sink.name)
	}

	if len(reports) == 0 || reports[0] != 0 || reports[len(reports)-1] != 100 {
		t.Fatalf("progress = %v, want 0 first and 100 last", reports)
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] <= reports[i-1] {
			t.Errorf("progress not strictly increasing: %v", reports)
		}
	}
}

func TestEnviarAllStrategiesFailAggregatesReasons(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	up := NewUploaderWith(&fakeSink{}, failingRead, BuscarHTTP(srv.Client()))

	var last int
	_, err := up.Enviar(context.Background(), srv.URL+"/x.png", "u1", func(pct int) { last = pct })
	if err == nil {
		t.Fatal("Enviar should fail when every strategy fails")
	}
	msg := err.Error()
	if !strings.Contains(msg, "não foi possível ler a imagem") {
		t.Errorf("error = %q, want the aggregated read failure message", msg)
	}
	if !strings.Contains(msg, "permission denied") || !strings.Contains(msg, "status 404") {
		t.Errorf("error = %q, want both strategy reasons included", msg)
	}
	if last == 100 {
		t.Error("progress reached 100 on failure")
	}
}

func TestEnviarEmptyBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	up := NewUploaderWith(&fakeSink{}, BuscarHTTP(srv.Client()))

	_, err := up.Enviar(context.Background(), srv.URL+"/x.png", "u1", nil)
	if err == nil || !strings.Contains(err.Error(), "vazia") {
		t.Errorf("err = %v, want empty-image error", err)
	}
}

func TestEnviarSinkErrorSurfaced(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foto.jpg")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	up := NewUploaderWith(&fakeSink{err: errors.New("bucket indisponível")}, LerArquivo)

	_, err := up.Enviar(context.Background(), path, "u1", nil)
	if err == nil || !strings.Contains(err.Error(), "bucket indisponível") {
		t.Errorf("err = %v, want the sink error returned as-is", err)
	}
}
