package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
)

// PageHandler статические страницы магазина (доставка, оплата и т.п.)
type PageHandler struct {
	Logger  *zap.SugaredLogger
	ShopAPI shopapi.ShopAPI
}

// NewPageHandler конструктор
func NewPageHandler(log *zap.SugaredLogger, api shopapi.ShopAPI) *PageHandler {
	return &PageHandler{
		Logger:  log,
		ShopAPI: api,
	}
}

// GetPage - GET /api/pages/{slug}
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		myErr.SendErrorTo(w, myErr.ErrBadSlug, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ShopAPI.PageBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(p); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
