package controllers

import (
	"net/http"

	"github.com/communica-av/quoter-backend/api/responses"
	"github.com/communica-av/quoter-backend/internal/catalog"
	pkgerrors "github.com/communica-av/quoter-backend/pkg/errors"
	"github.com/communica-av/quoter-backend/pkg/logger"
)

// CatalogList returns the active catalog. The service already substitutes the
// compiled-in fallback, so this endpoint never fails on a bad catalog source.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Load(r.Context()))
	}
}
