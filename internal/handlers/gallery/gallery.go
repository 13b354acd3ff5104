package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/gallery"
)

// GalleryHandler публичная галерея, прокси к внешнему API
type GalleryHandler struct {
	Logger  *zap.SugaredLogger
	ShopAPI shopapi.ShopAPI
}

// NewGalleryHandler конструктор
func NewGalleryHandler(log *zap.SugaredLogger, api shopapi.ShopAPI) *GalleryHandler {
	return &GalleryHandler{
		Logger:  log,
		ShopAPI: api,
	}
}

// GetItems - GET /api/gallery
func (h *GalleryHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.ShopAPI.GalleryItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}

	if items == nil {
		items = []gallery.Item{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(items); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
