package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"socialsh-front/internal/cart"
	"socialsh-front/internal/kafka"
	"socialsh-front/internal/session"
	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/order"
)

// CheckoutHandler оформляет заказ: снимок корзины уходит во внешнее API,
// при успехе корзина очищается. Заказ принимают и для анонимного
// покупателя - контактные данные он вводит в форме.
type CheckoutHandler struct {
	Logger        *zap.SugaredLogger
	Carts         *cart.Stores
	Sessions      session.SessionRepo
	ShopAPI       shopapi.ShopAPI
	EventProducer kafka.EventProducer
}

// NewCheckoutHandler конструктор
func NewCheckoutHandler(
	log *zap.SugaredLogger,
	carts *cart.Stores,
	sessions session.SessionRepo,
	api shopapi.ShopAPI,
	ep kafka.EventProducer,
) *CheckoutHandler {
	return &CheckoutHandler{
		Logger:        log,
		Carts:         carts,
		Sessions:      sessions,
		ShopAPI:       api,
		EventProducer: ep,
	}
}

type checkoutRequest struct {
	Customer order.Customer `json:"customer"`
	Comment  string         `json:"comment"`
}

// Submit - POST /api/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	store := h.Carts.For(sess.ProfileID)
	lines := store.Read(r.Context())
	if len(lines) == 0 {
		myErr.SendErrorTo(w, myErr.ErrEmptyCart, http.StatusBadRequest, h.Logger)
		return
	}

	// Снимок строк корзины: цены на момент добавления, их и отправляем.
	// Актуальность перепроверит сам сервис заказов.
	items := make([]order.CreateItem, 0, len(lines))
	productIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		items = append(items, order.CreateItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
		productIDs = append(productIDs, line.ProductID)
	}

	created, err := h.ShopAPI.CreateOrder(r.Context(), sess.Access, order.CreateOrder{
		Items:    items,
		Customer: req.Customer,
		Comment:  req.Comment,
		Total:    store.TotalPrice(r.Context()),
	})
	if err != nil {
		// Корзину не трогаем: покупатель может исправить данные и повторить
		if errors.Is(err, myErr.ErrUnauthorized) {
			myErr.SendErrorTo(w, err, http.StatusUnauthorized, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}

	// Заказ принят - чистим корзину
	store.Clear(r.Context())

	event := kafka.Event{
		UserID:     sess.ProfileID,
		Type:       kafka.EventTypePurchase,
		ProductIDs: productIDs,
		Timestamp:  time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send purchase event: %v", err)
	}

	h.Logger.Infof("profile %s placed order %s", sess.ProfileID, created.OrderID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
