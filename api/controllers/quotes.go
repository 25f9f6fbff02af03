package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/api/responses"
	"github.com/communica-av/quoter-backend/internal/quotes"
	"github.com/communica-av/quoter-backend/pkg/db/models"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/communica-av/quoter-backend/pkg/logger"
)

type quoteItemResponse struct {
	Category  string          `json:"category"`
	ItemKey   string          `json:"item_key"`
	Label     string          `json:"label"`
	Emoji     string          `json:"emoji"`
	Unit      string          `json:"unit"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type quoteResponse struct {
	ID            uuid.UUID           `json:"id"`
	EventType     string              `json:"event_type"`
	PaxRange      string              `json:"pax_range"`
	City          string              `json:"city"`
	VenueDefined  bool                `json:"venue_defined"`
	IsOutdoor     bool                `json:"is_outdoor"`
	AreaQty       int                 `json:"area_qty"`
	Montage       string              `json:"montage"`
	DurationHours int                 `json:"duration_hours"`
	CustomerName  string              `json:"customer_name"`
	Company       string              `json:"company"`
	Email         string              `json:"email"`
	Whatsapp      string              `json:"whatsapp"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Variance      decimal.Decimal     `json:"variance"`
	TotalMin      decimal.Decimal     `json:"total_min"`
	TotalMax      decimal.Decimal     `json:"total_max"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []quoteItemResponse `json:"items"`
}

func newQuoteResponse(quote *models.Quote) quoteResponse {
	items := make([]quoteItemResponse, 0, len(quote.Items))
	for _, item := range quote.Items {
		items = append(items, quoteItemResponse{
			Category:  item.Category,
			ItemKey:   item.ItemKey,
			Label:     item.Label,
			Emoji:     item.Emoji,
			Unit:      item.Unit,
			Qty:       item.Qty,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return quoteResponse{
		ID:            quote.ID,
		EventType:     quote.EventType,
		PaxRange:      quote.PaxRange,
		City:          quote.City,
		VenueDefined:  quote.VenueDefined,
		IsOutdoor:     quote.IsOutdoor,
		AreaQty:       quote.AreaQty,
		Montage:       quote.Montage.String(),
		DurationHours: quote.DurationHours,
		CustomerName:  quote.CustomerName,
		Company:       quote.Company,
		Email:         quote.Email,
		Whatsapp:      quote.Whatsapp,
		Subtotal:      quote.Subtotal,
		Variance:      quote.Variance,
		TotalMin:      quote.TotalMin,
		TotalMax:      quote.TotalMax,
		CreatedAt:     quote.CreatedAt,
		Items:         items,
	}
}

// QuoteGet returns a submitted quote with its line items.
func QuoteGet(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quoteID, err := uuid.Parse(chi.URLParam(r, "quoteId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid quote id"))
			return
		}

		quote, err := svc.Get(r.Context(), quoteID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newQuoteResponse(quote))
	}
}
