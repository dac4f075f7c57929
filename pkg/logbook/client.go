package logbook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"movie-logbook/pkg/feed"
	"movie-logbook/pkg/utils"

	"github.com/gorilla/websocket"
)

// Client talks to the logbook backend: auth, owner-scoped CRUD, image
// upload and the websocket change feed. Server error messages come back
// translated to Portuguese where a translation exists.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns the active session token, empty before login.
func (c *Client) Token() string { return c.token }

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !envelope.Status {
		return errors.New(utils.TraduzirErro(envelope.Message))
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// ---------------- auth ----------------

type AuthSession struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
}

type CurrentUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nome     string `json:"nome"`
	DataNasc string `json:"datanasc"`
}

func (c *Client) Register(ctx context.Context, email, password, nome, dataNasc string) (AuthSession, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"nome":     nome,
		"datanasc": dataNasc,
	}

	var session AuthSession
	if err := c.do(ctx, http.MethodPost, "/api/register", body, &session); err != nil {
		return AuthSession{}, err
	}
	c.token = session.Token
	return session, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthSession, error) {
	body := map[string]string{"email": email, "password": password}

	var session AuthSession
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &session); err != nil {
		return AuthSession{}, err
	}
	c.token = session.Token
	return session, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) Me(ctx context.Context) (CurrentUser, error) {
	var user CurrentUser
	err := c.do(ctx, http.MethodGet, "/api/me", nil, &user)
	return user, err
}

// ---------------- filmes ----------------

func (c *Client) ListFilmes(ctx context.Context) ([]Filme, error) {
	var filmes []Filme
	err := c.do(ctx, http.MethodGet, "/api/filmes", nil, &filmes)
	return filmes, err
}

func (c *Client) CreateFilme(ctx context.Context, filme Filme) (Filme, error) {
	var out Filme
	err := c.do(ctx, http.MethodPost, "/api/filmes", filme, &out)
	return out, err
}

func (c *Client) UpdateFilme(ctx context.Context, filme Filme) (Filme, error) {
	var out Filme
	err := c.do(ctx, http.MethodPut, "/api/filmes/"+filme.ID, filme, &out)
	return out, err
}

func (c *Client) DeleteFilme(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/filmes/"+id, nil, nil)
}

// ---------------- resenhas ----------------

func (c *Client) ListResenhas(ctx context.Context) ([]Resenha, error) {
	var resenhas []Resenha
	err := c.do(ctx, http.MethodGet, "/api/resenhas", nil, &resenhas)
	return resenhas, err
}

func (c *Client) CreateResenha(ctx context.Context, resenha Resenha) (Resenha, error) {
	var out Resenha
	err := c.do(ctx, http.MethodPost, "/api/resenhas", resenha, &out)
	return out, err
}

func (c *Client) UpdateResenha(ctx context.Context, resenha Resenha) (Resenha, error) {
	var out Resenha
	err := c.do(ctx, http.MethodPut, "/api/resenhas/"+resenha.ID, resenha, &out)
	return out, err
}

func (c *Client) DeleteResenha(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resenhas/"+id, nil, nil)
}

// ---------------- cenas ----------------

func (c *Client) ListCenas(ctx context.Context) ([]Cena, error) {
	var cenas []Cena
	err := c.do(ctx, http.MethodGet, "/api/cenas", nil, &cenas)
	return cenas, err
}

func (c *Client) CreateCena(ctx context.Context, cena Cena) (Cena, error) {
	var out Cena
	err := c.do(ctx, http.MethodPost, "/api/cenas", cena, &out)
	return out, err
}

func (c *Client) UpdateCena(ctx context.Context, cena Cena) (Cena, error) {
	var out Cena
	err := c.do(ctx, http.MethodPut, "/api/cenas/"+cena.ID, cena, &out)
	return out, err
}

func (c *Client) DeleteCena(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cenas/"+id, nil, nil)
}

// ---------------- imagens ----------------

type uploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// UploadImagem pushes raw image bytes and returns the public URL. It
// satisfies BlobSink so a Client plugs straight into an Uploader.
func (c *Client) UploadImagem(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/imagens", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-File-Name", name)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if !envelope.Status {
		return "", errors.New(utils.TraduzirErro(envelope.Message))
	}

	var result uploadResult
	if err := json.Unmarshal(envelope.Data, &result); err != nil {
		return "", fmt.Errorf("decode upload result: %w", err)
	}
	return result.URL, nil
}

// ---------------- change feed ----------------

// FeedConn is an open websocket feed subscription. Events arrive on
// Events() in server order until the connection drops or Close is
// called, at which point the channel closes.
type FeedConn struct {
	conn   *websocket.Conn
	events chan feed.Event
	done   chan struct{}
	once   sync.Once
}

func (f *FeedConn) Events() <-chan feed.Event { return f.events }

// Close tears the subscription down. The reader exits even when the
// consumer stopped draining Events().
func (f *FeedConn) Close() error {
	f.once.Do(func() { close(f.done) })
	return f.conn.Close()
}

// Feed opens the realtime change feed for the given tables (all tables
// when none given). The session authenticates through the token query
// parameter since websocket handshakes carry no headers here.
func (c *Client) Feed(ctx context.Context, tables ...string) (*FeedConn, error) {
	if c.token == "" {
		return nil, errors.New("feed requires an authenticated session")
	}

	wsURL, err := url.Parse(c.baseURL + "/api/feed")
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	switch wsURL.Scheme {
	case "http":
		wsURL.Scheme = "ws"
	case "https":
		wsURL.Scheme = "wss"
	}

	q := wsURL.Query()
	q.Set("token", c.token)
	if len(tables) > 0 {
		q.Set("tables", strings.Join(tables, ","))
	}
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial feed: %w", err)
	}

	fc := &FeedConn{
		conn:   conn,
		events: make(chan feed.Event, 64),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(fc.events)
		for {
			var ev feed.Event
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			select {
			case fc.events <- ev:
			case <-fc.done:
				return
			}
		}
	}()

	return fc, nil
}
