package logbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"movie-logbook/pkg/storage"
)

// BlobSink stores raw image bytes under a destination name and resolves
// the public URL.
type BlobSink interface {
	UploadImagem(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// ReadStrategy is one way of turning an asset URI into raw bytes.
type ReadStrategy func(ctx context.Context, uri string) ([]byte, error)

// LerArquivo reads the asset from the local filesystem, accepting both
// plain paths and file:// URIs.
func LerArquivo(_ context.Context, uri string) ([]byte, error) {
	path := strings.TrimPrefix(uri, "file://")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler arquivo: %w", err)
	}
	return data, nil
}

// BuscarHTTP fetches the asset URI over HTTP, the fallback when the
// filesystem read is not possible.
func BuscarHTTP(client *http.Client) ReadStrategy {
	return func(ctx context.Context, uri string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, fmt.Errorf("buscar imagem: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("buscar imagem: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("buscar imagem: status %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("ler resposta: %w", err)
		}
		return data, nil
	}
}

// Uploader runs the photo pipeline: normalize the extension, acquire
// the bytes through an ordered strategy list, then push to the sink
// under <user>/<millis>.<ext>.
type Uploader struct {
	sink       BlobSink
	strategies []ReadStrategy
	now        func() time.Time
}

// NewUploader builds the default pipeline: filesystem read first, HTTP
// fetch as fallback.
func NewUploader(sink BlobSink) *Uploader {
	return &Uploader{
		sink:       sink,
		strategies: []ReadStrategy{LerArquivo, BuscarHTTP(http.DefaultClient)},
		now:        time.Now,
	}
}

// NewUploaderWith builds a pipeline with explicit strategies, in try
// order.
func NewUploaderWith(sink BlobSink, strategies ...ReadStrategy) *Uploader {
	return &Uploader{
		sink:       sink,
		strategies: strategies,
		now:        time.Now,
	}
}

// Enviar uploads the asset at uri into the user's namespace and returns
// the public URL. onProgress, when non-nil, receives non-decreasing
// percentages from 0 to 100; it stops short of 100 on failure. Each
// read strategy is tried in order and their failure reasons are only
// surfaced together when all of them fail.
func (u *Uploader) Enviar(ctx context.Context, uri, userID string, onProgress func(int)) (string, error) {
	progress := newProgress(onProgress)
	progress.report(0)

	ext := storage.NormalizeExt(uri)
	contentType := storage.ContentTypeFor(ext)
	name := storage.ObjectName(userID, u.now(), ext)
	progress.report(10)

	var data []byte
	var failures []string
	for _, read := range u.strategies {
		got, err := read(ctx, uri)
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}
		data = got
		break
	}

	if data == nil {
		return "", fmt.Errorf("não foi possível ler a imagem: %s", strings.Join(failures, "; "))
	}
	if len(data) == 0 {
		return "", errors.New("imagem vazia ou inválida")
	}
	progress.report(50)

	url, err := u.sink.UploadImagem(ctx, name, data, contentType)
	if err != nil {
		return "", err
	}
	progress.report(100)

	return url, nil
}

// progress guards the callback against regressions: reported values
// never decrease.
type progress struct {
	fn   func(int)
	last int
}

func newProgress(fn func(int)) *progress {
	return &progress{fn: fn, last: -1}
}

func (p *progress) report(pct int) {
	if p.fn == nil || pct <= p.last {
		return
	}
	p.last = pct
	p.fn(pct)
}
