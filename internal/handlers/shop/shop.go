package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialsh-front/internal/kafka"
	"socialsh-front/internal/session"
	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/product"
)

// ShopHandler витрина каталога: тонкий прокси к внешнему API + события
// просмотров и поиска для аналитики
type ShopHandler struct {
	Logger        *zap.SugaredLogger
	ShopAPI       shopapi.ShopAPI
	Sessions      session.SessionRepo
	EventProducer kafka.EventProducer
}

// NewShopHandler конструктор
func NewShopHandler(
	log *zap.SugaredLogger,
	api shopapi.ShopAPI,
	sessions session.SessionRepo,
	ep kafka.EventProducer,
) *ShopHandler {
	return &ShopHandler{
		Logger:        log,
		ShopAPI:       api,
		Sessions:      sessions,
		EventProducer: ep,
	}
}

// profileID возвращает профиль покупателя для событий аналитики.
// Сессию здесь не создаем: просмотр витрины без куки - обычное дело.
func (h *ShopHandler) profileID(r *http.Request) string {
	sess, err := h.Sessions.FromRequest(r)
	if err != nil {
		return ""
	}
	return sess.ProfileID
}

func (h *ShopHandler) sendItems(w http.ResponseWriter, items interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"items": items}); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// GetProducts - GET /api/products?new=true&sale=true&page=1&limit=20
func (h *ShopHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := product.Filter{
		New:  query.Get("new") == "true",
		Sale: query.Get("sale") == "true",
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}

	products, err := h.ShopAPI.Products(r.Context(), filter)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}
	if products == nil {
		products = []product.Product{}
	}

	h.sendItems(w, products)
}

// GetProduct - GET /api/products/{slug}
func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if slug == "" {
		myErr.SendErrorTo(w, myErr.ErrBadSlug, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ShopAPI.ProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}

	// Просмотр карточки товара - событие для аналитики
	if profileID := h.profileID(r); profileID != "" {
		event := kafka.Event{
			UserID:     profileID,
			Type:       kafka.EventTypeView,
			ProductIDs: []string{p.ID},
			Timestamp:  time.Now(),
		}
		if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
			h.Logger.Warnf("failed to send view event: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"item": p}); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// Search - GET /api/products/search?q=...&page=1&limit=20
func (h *ShopHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := query.Get("q")
	if q == "" {
		myErr.SendErrorTo(w, myErr.ErrEmptyQuery, http.StatusBadRequest, h.Logger)
		return
	}

	pageNum := 1
	if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 0 {
		pageNum = p
	}
	limit := 20
	if l, err := strconv.Atoi(query.Get("limit")); err == nil && l > 0 {
		limit = l
	}

	products, err := h.ShopAPI.SearchProducts(r.Context(), q, pageNum, limit)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}
	if products == nil {
		products = []product.Product{}
	}

	if profileID := h.profileID(r); profileID != "" {
		event := kafka.Event{
			UserID:    profileID,
			Type:      kafka.EventTypeSearch,
			Query:     q,
			Timestamp: time.Now(),
		}
		if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
			h.Logger.Warnf("failed to send search event: %v", err)
		}
	}

	h.sendItems(w, products)
}
