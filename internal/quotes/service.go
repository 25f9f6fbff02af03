package quotes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/communica-av/quoter-backend/internal/builder"
	"github.com/communica-av/quoter-backend/pkg/db/models"
	"github.com/communica-av/quoter-backend/pkg/enums"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/communica-av/quoter-backend/pkg/logger"
	"github.com/communica-av/quoter-backend/pkg/metrics"
)

// Fixed header constants for the current guided flow; the builder only quotes
// corporate events in this audience bracket.
const (
	eventType = "Corporativo"
	paxRange  = "151-400"
)

// ContactInput carries the requester details captured at the final step.
type ContactInput struct {
	CustomerName string
	Company      string
	Email        string
	Whatsapp     string
}

// QuoteRepository is the persistence seam for the two-step submission write.
type QuoteRepository interface {
	InsertHeader(ctx context.Context, quote *models.Quote) error
	InsertItems(ctx context.Context, items []models.QuoteItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

// Service performs quote submissions and reads back stored quotes.
type Service interface {
	Submit(ctx context.Context, state *builder.State, contact ContactInput) (*models.Quote, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Quote, error)
}

type service struct {
	repo    QuoteRepository
	metrics *metrics.SubmissionMetrics
	logg    *logger.Logger
}

// NewService builds a submission service backed by the provided repository.
func NewService(repo QuoteRepository, subMetrics *metrics.SubmissionMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("quote repository required")
	}
	return &service{repo: repo, metrics: subMetrics, logg: logg}, nil
}

// Submit snapshots the builder state into a quote header plus line items and
// persists both. One call is one attempt: a retry after any failure mints a
// brand-new header id. If the items insert fails the already-written header
// stays behind and the caller gets a dependency error — no compensation.
func (s *service) Submit(ctx context.Context, state *builder.State, contact ContactInput) (*models.Quote, error) {
	if state == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "builder state is required")
	}
	if strings.TrimSpace(contact.CustomerName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(contact.Email) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if state.Step != enums.BuilderStepReviewAndSubmit {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session is not ready to submit")
	}
	if !state.HasBillableLine() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart must contain at least one item")
	}

	totals := builder.ComputeTotals(state.Lines, state.Setup)

	quote := &models.Quote{
		ID:            uuid.New(),
		EventType:     eventType,
		PaxRange:      paxRange,
		City:          state.Setup.City,
		VenueDefined:  state.Setup.VenueDefined,
		IsOutdoor:     state.Setup.IsOutdoor,
		AreaQty:       state.Setup.AreaQty,
		Montage:       state.Setup.Montage,
		DurationHours: state.Setup.DurationHours,
		CustomerName:  contact.CustomerName,
		Company:       contact.Company,
		Email:         contact.Email,
		Whatsapp:      contact.Whatsapp,
		Subtotal:      totals.Subtotal,
		Variance:      totals.Variance,
		TotalMin:      totals.TotalMin,
		TotalMax:      totals.TotalMax,
	}

	start := time.Now()

	if err := s.repo.InsertHeader(ctx, quote); err != nil {
		s.metrics.IncFailure("header")
		s.metrics.ObserveDuration("failure", time.Since(start))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save quote").
			WithDetails(map[string]any{"step": "header"})
	}

	items := buildItems(quote.ID, state.Lines)
	if err := s.repo.InsertItems(ctx, items); err != nil {
		s.metrics.IncFailure("items")
		s.metrics.ObserveDuration("failure", time.Since(start))
		if s.logg != nil {
			errCtx := s.logg.WithQuoteID(ctx, quote.ID.String())
			s.logg.Error(errCtx, "quote items insert failed after header write", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save quote items").
			WithDetails(map[string]any{"step": "items"})
	}

	s.metrics.IncSuccess()
	s.metrics.ObserveDuration("success", time.Since(start))

	if s.logg != nil {
		okCtx := s.logg.WithQuoteID(ctx, quote.ID.String())
		s.logg.Info(okCtx, "quote submitted")
	}

	quote.Items = items
	return quote, nil
}

// Get loads a stored quote with its line items.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Quote, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "quote not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load quote")
	}
	return quote, nil
}

func buildItems(quoteID uuid.UUID, lines []builder.CartLine) []models.QuoteItem {
	items := make([]models.QuoteItem, 0, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		items = append(items, models.QuoteItem{
			QuoteID:   quoteID,
			Category:  line.Category,
			ItemKey:   line.ItemKey,
			Label:     line.Label,
			Emoji:     line.Emoji,
			Unit:      line.Unit,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal(),
		})
	}
	return items
}
