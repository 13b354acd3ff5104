package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialsh-front/internal/cart"
	"socialsh-front/internal/kafka"
	"socialsh-front/internal/session"
	myErr "socialsh-front/internal/types/errors"
)

// CartHandler ручки корзины. Сессия создается лениво: первый же запрос
// к корзине выдает анонимному покупателю профиль.
type CartHandler struct {
	Logger        *zap.SugaredLogger
	Carts         *cart.Stores
	Sessions      session.SessionRepo
	EventProducer kafka.EventProducer
}

// NewCartHandler конструктор
func NewCartHandler(
	log *zap.SugaredLogger,
	carts *cart.Stores,
	sessions session.SessionRepo,
	ep kafka.EventProducer,
) *CartHandler {
	return &CartHandler{
		Logger:        log,
		Carts:         carts,
		Sessions:      sessions,
		EventProducer: ep,
	}
}

// cartResponse - корзина вместе с производными суммами, чтобы страницы
// не пересчитывали их сами
type cartResponse struct {
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice int64       `json:"totalPrice"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, store *cart.Store, status int) {
	resp := cartResponse{
		Items:      store.Read(r.Context()),
		TotalItems: store.TotalItems(r.Context()),
		TotalPrice: store.TotalPrice(r.Context()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// GetCart - GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.respondCart(w, r, h.Carts.For(sess.ProfileID), http.StatusOK)
}

// GetCount - GET /api/cart/count
// Легкая ручка для бейджа на кнопке корзины
func (h *CartHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	count := h.Carts.For(sess.ProfileID).TotalItems(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int{"count": count}); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// AddItem - POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item cart.NewLine
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}
	if item.ProductID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	store := h.Carts.For(sess.ProfileID)
	store.Add(r.Context(), item)

	// Событие для аналитики - best-effort
	event := kafka.Event{
		UserID:     sess.ProfileID,
		Type:       kafka.EventTypeAddToCart,
		ProductIDs: []string{item.ProductID},
		Timestamp:  time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send addToCart event: %v", err)
	}

	h.Logger.Infof("added product %s to cart of profile %s", item.ProductID, sess.ProfileID)
	h.respondCart(w, r, store, http.StatusCreated)
}

// UpdateItem - PATCH /api/cart/items/{productID}
// Количество <= 0 трактуется как удаление строки
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["productID"]
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	store := h.Carts.For(sess.ProfileID)
	store.UpdateQuantity(r.Context(), productID, body.Quantity)

	h.respondCart(w, r, store, http.StatusOK)
}

// DeleteItem - DELETE /api/cart/items/{productID}
func (h *CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID := vars["productID"]
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	store := h.Carts.For(sess.ProfileID)
	store.Remove(r.Context(), productID)

	h.respondCart(w, r, store, http.StatusOK)
}

// Clear - DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	store := h.Carts.For(sess.ProfileID)
	store.Clear(r.Context())

	h.respondCart(w, r, store, http.StatusOK)
}
