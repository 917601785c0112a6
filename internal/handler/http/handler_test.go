package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-storybook/internal/config"
	"github.com/MKhiriev/go-storybook/internal/logger"
	"github.com/MKhiriev/go-storybook/internal/mock"
	"github.com/MKhiriev/go-storybook/internal/ratelimit"
	"github.com/MKhiriev/go-storybook/internal/service"
	"github.com/MKhiriev/go-storybook/models"
)

var testServerConfig = config.Server{
	RequestTimeout:     5 * time.Second,
	AllowedOrigins:     []string{"http://localhost:5173"},
	AuthRateLimitRPS:   100,
	AuthRateLimitBurst: 100,
}

var (
	luna = models.Identity{ID: "user-luna", Username: "luna"}
	sol  = models.Identity{ID: "user-sol", Username: "sol"}
)

type mockServices struct {
	auth     *mock.MockAuthService
	books    *mock.MockBookService
	stickers *mock.MockStickerService
	appInfo  *mock.MockAppInfoService
}

// newTestHandler builds a Handler backed by gomock services.
func newTestHandler(t *testing.T) (*Handler, mockServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockServices{
		auth:     mock.NewMockAuthService(ctrl),
		books:    mock.NewMockBookService(ctrl),
		stickers: mock.NewMockStickerService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		BookService:    m.books,
		StickerService: m.stickers,
		AppInfoService: m.appInfo,
	}, testServerConfig, logger.Nop())
	t.Cleanup(h.Close)

	return h, m
}

// expectToken makes the auth mock accept "token-<username>" for identity.
func (m mockServices) expectToken(identity models.Identity) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "token-"+identity.Username).
		Return(models.Token{Claims: models.Claims{UserID: identity.ID, Username: identity.Username}}, nil).
		AnyTimes()
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func tokenHeader(token string) map[string]string {
	return map[string]string{authTokenHeader: token}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func messageOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.MessageResponse](t, rr).Message
}

// newTightLimiter allows a single auth call per client, then blocks.
func newTightLimiter() *ratelimit.KeyedRateLimiter {
	return ratelimit.New(0.001, 1)
}
