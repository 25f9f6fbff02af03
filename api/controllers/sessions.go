package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/communica-av/quoter-backend/api/responses"
	"github.com/communica-av/quoter-backend/api/validators"
	"github.com/communica-av/quoter-backend/internal/builder"
	"github.com/communica-av/quoter-backend/internal/quotes"
	"github.com/communica-av/quoter-backend/internal/session"
	"github.com/communica-av/quoter-backend/pkg/enums"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/communica-av/quoter-backend/pkg/logger"
)

// Numeric event fields carry no range tags: out-of-range values are clamped by
// the session engine, never rejected at the boundary. Likewise the montage
// string; anything unrecognized parses to undefined.
type eventSetupRequest struct {
	City          string `json:"city" validate:"required"`
	VenueDefined  bool   `json:"venue_defined"`
	IsOutdoor     bool   `json:"is_outdoor"`
	Montage       string `json:"montage"`
	DurationHours int    `json:"duration_hours"`
	AreaQty       int    `json:"area_qty"`
}

type areaRequest struct {
	AreaQty int `json:"area_qty"`
}

type addItemRequest struct {
	ItemKey string `json:"item_key" validate:"required"`
}

// Contact validation is presence-only; the gateway re-checks name and email.
type submitRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Company      string `json:"company"`
	Email        string `json:"email" validate:"required"`
	Whatsapp     string `json:"whatsapp"`
}

func SessionCreate(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}
		view, err := svc.Create(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

func SessionGet(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Get(r.Context(), chi.URLParam(r, "sessionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionUpdateEvent(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload eventSetupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		montage, _ := enums.ParseMontageMode(payload.Montage)
		view, err := svc.UpdateEventSetup(r.Context(), chi.URLParam(r, "sessionId"), builder.EventSetupInput{
			City:          payload.City,
			VenueDefined:  payload.VenueDefined,
			IsOutdoor:     payload.IsOutdoor,
			Montage:       montage,
			DurationHours: payload.DurationHours,
			AreaQty:       payload.AreaQty,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionUpdateArea(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload areaRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.UpdateArea(r.Context(), chi.URLParam(r, "sessionId"), payload.AreaQty)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionAddItem(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.AddItem(r.Context(), chi.URLParam(r, "sessionId"), payload.ItemKey)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionIncrementItem(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.IncrementItem(r.Context(), chi.URLParam(r, "sessionId"), chi.URLParam(r, "itemKey"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionDecrementItem(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.DecrementItem(r.Context(), chi.URLParam(r, "sessionId"), chi.URLParam(r, "itemKey"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionAdvance(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Advance(r.Context(), chi.URLParam(r, "sessionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionBack(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Back(r.Context(), chi.URLParam(r, "sessionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

func SessionDelete(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "sessionId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func SessionSubmit(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload submitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.Submit(r.Context(), chi.URLParam(r, "sessionId"), quotes.ContactInput{
			CustomerName: payload.CustomerName,
			Company:      payload.Company,
			Email:        payload.Email,
			Whatsapp:     payload.Whatsapp,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}
