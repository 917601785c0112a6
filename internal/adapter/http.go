package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/utils"
	"github.com/MKhiriev/go-storybook/models"
)

// authTokenHeader is the request header the server reads the token from.
const authTokenHeader = "x-auth-token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is cfg.ServerAddress; a missing scheme
// defaults to http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidURL
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs to /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", credentials)
}

// Login implements [ServerAdapter]. It POSTs to /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", credentials)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&authResponse).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResponse.Token)
	h.logger.Debug().Str("user_id", authResponse.User.ID).Str("path", path).Msg("authenticated")

	return authResponse, nil
}

// ListBooks implements [ServerAdapter]. It GETs /api/books with category,
// author and mine query parameters.
func (h *httpServerAdapter) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	var books []models.Book

	req := h.authedRequest(ctx).SetResult(&books)
	if filter.Category != "" {
		req.SetQueryParam("category", string(filter.Category))
	}
	if author := strings.TrimSpace(filter.Author); author != "" {
		req.SetQueryParam("author", author)
	}
	if filter.OwnerID != "" {
		req.SetQueryParam("mine", "true")
	}

	resp, err := req.Get("/api/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return books, nil
}

// CreateBook implements [ServerAdapter]. It POSTs to /api/books.
func (h *httpServerAdapter) CreateBook(ctx context.Context, book models.NewBook) (models.Book, error) {
	var created models.Book

	resp, err := h.authedRequest(ctx).
		SetBody(book).
		SetResult(&created).
		Post("/api/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return created, nil
}

// UpdateBook implements [ServerAdapter]. It PUTs to /api/books/{id}.
func (h *httpServerAdapter) UpdateBook(ctx context.Context, id string, update models.BookUpdate) (models.Book, error) {
	var updated models.Book

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(update).
		SetResult(&updated).
		Put("/api/books/{id}")
	if err != nil {
		return models.Book{}, fmt.Errorf("update book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	return updated, nil
}

// DeleteBook implements [ServerAdapter]. It sends DELETE /api/books/{id}.
func (h *httpServerAdapter) DeleteBook(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/books/{id}")
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListStickers implements [ServerAdapter]. It GETs /api/stickers.
func (h *httpServerAdapter) ListStickers(ctx context.Context) ([]models.Sticker, error) {
	var stickers []models.Sticker

	resp, err := h.authedRequest(ctx).
		SetResult(&stickers).
		Get("/api/stickers")
	if err != nil {
		return nil, fmt.Errorf("list stickers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return stickers, nil
}

// CreateSticker implements [ServerAdapter]. It POSTs to /api/stickers.
func (h *httpServerAdapter) CreateSticker(ctx context.Context, sticker models.NewSticker) (models.Sticker, error) {
	var created models.Sticker

	resp, err := h.authedRequest(ctx).
		SetBody(sticker).
		SetResult(&created).
		Post("/api/stickers")
	if err != nil {
		return models.Sticker{}, fmt.Errorf("create sticker request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Sticker{}, err
	}

	return created, nil
}

// UpdateSticker implements [ServerAdapter]. It PUTs to /api/stickers/{id};
// nil fields of update are omitted from the body.
func (h *httpServerAdapter) UpdateSticker(ctx context.Context, id string, update models.StickerUpdate) (models.Sticker, error) {
	var updated models.Sticker

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetBody(stickerUpdateBody(update)).
		SetResult(&updated).
		Put("/api/stickers/{id}")
	if err != nil {
		return models.Sticker{}, fmt.Errorf("update sticker request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Sticker{}, err
	}

	return updated, nil
}

// DeleteSticker implements [ServerAdapter]. It sends DELETE
// /api/stickers/{id}.
func (h *httpServerAdapter) DeleteSticker(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/stickers/{id}")
	if err != nil {
		return fmt.Errorf("delete sticker request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(authTokenHeader, token)
	}
	return req
}

// stickerUpdateBody keeps only the supplied fields, so a move sends just
// x and y.
func stickerUpdateBody(update models.StickerUpdate) map[string]any {
	body := map[string]any{}
	if update.Text != nil {
		body["text"] = *update.Text
	}
	if update.Emoji != nil {
		body["emoji"] = *update.Emoji
	}
	if update.Color != nil {
		body["color"] = *update.Color
	}
	if update.X != nil {
		body["x"] = *update.X
	}
	if update.Y != nil {
		body["y"] = *update.Y
	}
	if update.Rotation != nil {
		body["rotation"] = *update.Rotation
	}
	if update.Type != nil {
		body["type"] = *update.Type
	}
	if update.Size != nil {
		body["size"] = *update.Size
	}
	return body
}
