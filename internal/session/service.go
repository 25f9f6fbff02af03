package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/communica-av/quoter-backend/internal/builder"
	"github.com/communica-av/quoter-backend/internal/catalog"
	"github.com/communica-av/quoter-backend/internal/quotes"
	"github.com/communica-av/quoter-backend/pkg/enums"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/communica-av/quoter-backend/pkg/logger"
	"github.com/communica-av/quoter-backend/pkg/money"
)

// View is the full session snapshot returned after every operation. Totals are
// recomputed from the cart on each read, never stored.
type View struct {
	ID               string             `json:"id"`
	Step             enums.BuilderStep  `json:"step"`
	Setup            builder.EventSetup `json:"setup"`
	Lines            []builder.CartLine `json:"lines"`
	Totals           builder.Totals     `json:"totals"`
	DisplayTotalMin  string             `json:"display_total_min"`
	DisplayTotalMax  string             `json:"display_total_max"`
	SubmittedQuoteID *uuid.UUID         `json:"submitted_quote_id,omitempty"`
}

// Service drives builder sessions: one create, then a series of state
// transitions, each persisted before the updated view goes back out.
type Service interface {
	Create(ctx context.Context) (*View, error)
	Get(ctx context.Context, sessionID string) (*View, error)
	UpdateEventSetup(ctx context.Context, sessionID string, input builder.EventSetupInput) (*View, error)
	UpdateArea(ctx context.Context, sessionID string, areaQty int) (*View, error)
	AddItem(ctx context.Context, sessionID, itemKey string) (*View, error)
	IncrementItem(ctx context.Context, sessionID, itemKey string) (*View, error)
	DecrementItem(ctx context.Context, sessionID, itemKey string) (*View, error)
	Advance(ctx context.Context, sessionID string) (*View, error)
	Back(ctx context.Context, sessionID string) (*View, error)
	Submit(ctx context.Context, sessionID string, contact quotes.ContactInput) (*View, error)
	Delete(ctx context.Context, sessionID string) error
}

type service struct {
	store   Store
	catalog catalog.Service
	quotes  quotes.Service
	logg    *logger.Logger
}

// NewService wires the session service to its store, the catalog provider and
// the submission gateway.
func NewService(store Store, catalogSvc catalog.Service, quotesSvc quotes.Service, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if quotesSvc == nil {
		return nil, fmt.Errorf("quote service required")
	}
	return &service{store: store, catalog: catalogSvc, quotes: quotesSvc, logg: logg}, nil
}

func (s *service) Create(ctx context.Context) (*View, error) {
	sessionID := uuid.NewString()
	state := builder.NewState()
	state.EnsureAreaLinePresent(s.catalog.Load(ctx))

	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, sessionID), "builder session created")
	}
	return toView(sessionID, state), nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toView(sessionID, state), nil
}

func (s *service) UpdateEventSetup(ctx context.Context, sessionID string, input builder.EventSetupInput) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		state.ApplyEventSetup(input)
		return nil
	})
}

func (s *service) UpdateArea(ctx context.Context, sessionID string, areaQty int) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		state.SyncAreaQuantity(areaQty)
		return nil
	})
}

func (s *service) AddItem(ctx context.Context, sessionID, itemKey string) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		item, ok := s.findCatalogItem(ctx, itemKey)
		if !ok {
			return pkgerrors.New(pkgerrors.CodeNotFound, "unknown catalog item")
		}
		state.AddItem(item)
		return nil
	})
}

func (s *service) IncrementItem(ctx context.Context, sessionID, itemKey string) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		state.Increment(itemKey)
		return nil
	})
}

func (s *service) DecrementItem(ctx context.Context, sessionID, itemKey string) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		state.Decrement(itemKey)
		return nil
	})
}

func (s *service) Advance(ctx context.Context, sessionID string) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		return state.Advance()
	})
}

func (s *service) Back(ctx context.Context, sessionID string) (*View, error) {
	return s.mutate(ctx, sessionID, func(state *builder.State) error {
		return state.Back()
	})
}

// Submit hands the session off to the quote gateway and marks it terminal on
// success. A failed submission leaves the session in review so the user can
// retry; the retry is a fresh attempt end to end.
func (s *service) Submit(ctx context.Context, sessionID string, contact quotes.ContactInput) (*View, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Step == enums.BuilderStepSubmitted {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session already submitted")
	}

	quote, err := s.quotes.Submit(ctx, state, contact)
	if err != nil {
		return nil, err
	}

	state.MarkSubmitted(quote.ID)
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		// The quote is already durable; failing here would hide its id and
		// invite a duplicate retry, so log the marker failure and answer with
		// the submitted view anyway.
		if s.logg != nil {
			errCtx := s.logg.WithSessionID(ctx, sessionID)
			s.logg.Error(errCtx, "failed to persist submitted marker", err)
		}
	}
	return toView(sessionID, state), nil
}

// Delete discards a session outright. Deleting an unknown id is a no-op; the
// key may have already expired.
func (s *service) Delete(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// mutate runs one transition against the loaded state and persists the result
// only when the transition was accepted. Submitted sessions are frozen.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(*builder.State) error) (*View, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Step == enums.BuilderStepSubmitted {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "session already submitted")
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return toView(sessionID, state), nil
}

func (s *service) findCatalogItem(ctx context.Context, itemKey string) (catalog.Item, bool) {
	for _, item := range s.catalog.Load(ctx) {
		if item.ItemKey == itemKey {
			return item, true
		}
	}
	return catalog.Item{}, false
}

func toView(sessionID string, state *builder.State) *View {
	totals := builder.ComputeTotals(state.Lines, state.Setup)
	return &View{
		ID:               sessionID,
		Step:             state.Step,
		Setup:            state.Setup,
		Lines:            state.Lines,
		Totals:           totals,
		DisplayTotalMin:  money.Format(totals.TotalMin),
		DisplayTotalMax:  money.Format(totals.TotalMax),
		SubmittedQuoteID: state.SubmittedQuoteID,
	}
}
