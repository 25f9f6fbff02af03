package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/communica-av/quoter-backend/internal/builder"
	"github.com/communica-av/quoter-backend/internal/quotes"
	"github.com/communica-av/quoter-backend/pkg/db/models"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
)

type stubQuoteService struct {
	quote *models.Quote
	err   error
}

func (s *stubQuoteService) Submit(context.Context, *builder.State, quotes.ContactInput) (*models.Quote, error) {
	return s.quote, s.err
}

func (s *stubQuoteService) Get(context.Context, uuid.UUID) (*models.Quote, error) {
	return s.quote, s.err
}

func TestQuoteGetSuccess(t *testing.T) {
	quote := &models.Quote{ID: uuid.New(), EventType: "Corporativo"}
	svc := &stubQuoteService{quote: quote}

	resp := routeWithParam(QuoteGet(svc, nil), http.MethodGet, "/quotes/"+quote.ID.String(), "/quotes/{quoteId}", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			ID        uuid.UUID `json:"id"`
			EventType string    `json:"event_type"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != quote.ID {
		t.Fatalf("unexpected quote id %s", envelope.Data.ID)
	}
	if envelope.Data.EventType != "Corporativo" {
		t.Fatalf("unexpected event type %q", envelope.Data.EventType)
	}
}

func TestQuoteGetInvalidID(t *testing.T) {
	svc := &stubQuoteService{}
	resp := routeWithParam(QuoteGet(svc, nil), http.MethodGet, "/quotes/not-a-uuid", "/quotes/{quoteId}", "")

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteGetNotFound(t *testing.T) {
	svc := &stubQuoteService{err: pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")}
	resp := routeWithParam(QuoteGet(svc, nil), http.MethodGet, "/quotes/"+uuid.NewString(), "/quotes/{quoteId}", "")

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
