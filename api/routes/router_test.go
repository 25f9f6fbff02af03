package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/communica-av/quoter-backend/internal/builder"
	"github.com/communica-av/quoter-backend/internal/catalog"
	"github.com/communica-av/quoter-backend/internal/quotes"
	"github.com/communica-av/quoter-backend/internal/session"
	"github.com/communica-av/quoter-backend/pkg/config"
	"github.com/communica-av/quoter-backend/pkg/db/models"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubCatalogService struct{}

func (stubCatalogService) Load(context.Context) []catalog.Item { return catalog.Fallback() }

type stubQuoteService struct{}

func (stubQuoteService) Submit(context.Context, *builder.State, quotes.ContactInput) (*models.Quote, error) {
	return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "not ready")
}

func (stubQuoteService) Get(context.Context, uuid.UUID) (*models.Quote, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
}

type stubSessionService struct{}

func (stubSessionService) Create(context.Context) (*session.View, error) {
	return &session.View{ID: uuid.NewString()}, nil
}

func (stubSessionService) Get(context.Context, string) (*session.View, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
}

func (s stubSessionService) UpdateEventSetup(ctx context.Context, id string, _ builder.EventSetupInput) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) UpdateArea(ctx context.Context, id string, _ int) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) AddItem(ctx context.Context, id, _ string) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) IncrementItem(ctx context.Context, id, _ string) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) DecrementItem(ctx context.Context, id, _ string) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) Advance(ctx context.Context, id string) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) Back(ctx context.Context, id string) (*session.View, error) {
	return s.Get(ctx, id)
}

func (s stubSessionService) Submit(ctx context.Context, id string, _ quotes.ContactInput) (*session.View, error) {
	return s.Get(ctx, id)
}

func (stubSessionService) Delete(context.Context, string) error { return nil }

func newTestRouter() http.Handler {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}
	return NewRouter(cfg, nil, stubPinger{}, stubPinger{}, stubCatalogService{}, stubQuoteService{}, stubSessionService{})
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, resp.Code)
		}
	}
}

func TestRouterWiring(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/v1/catalog", http.StatusOK},
		{http.MethodPost, "/api/v1/sessions", http.StatusCreated},
		{http.MethodGet, "/api/v1/sessions/abc", http.StatusNotFound},
		{http.MethodPost, "/api/v1/sessions/abc/advance", http.StatusNotFound},
		{http.MethodGet, "/api/v1/quotes/" + uuid.NewString(), http.StatusNotFound},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(tc.method, tc.path, nil))
		if resp.Code != tc.status {
			t.Fatalf("%s %s: expected %d got %d", tc.method, tc.path, tc.status, resp.Code)
		}
	}
}
