package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"socialsh-front/internal/contextutil"
	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/order"
	"socialsh-front/internal/types/user"
)

// AccountHandler личный кабинет. Всё отдаёт внешнее API, мы лишь
// прокидываем токен из сессии. Висит за auth-middleware, поэтому
// токен в контексте есть всегда.
type AccountHandler struct {
	Logger  *zap.SugaredLogger
	ShopAPI shopapi.ShopAPI
}

// NewAccountHandler конструктор
func NewAccountHandler(log *zap.SugaredLogger, api shopapi.ShopAPI) *AccountHandler {
	return &AccountHandler{
		Logger:  log,
		ShopAPI: api,
	}
}

func (h *AccountHandler) sendUpstreamError(w http.ResponseWriter, err error) {
	if errors.Is(err, myErr.ErrUnauthorized) {
		myErr.SendErrorTo(w, err, http.StatusUnauthorized, h.Logger)
		return
	}
	myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
}

// Me - GET /api/account/me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := contextutil.GetTokenFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	me, err := h.ShopAPI.Me(r.Context(), token)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(me); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// Orders - GET /api/account/orders
func (h *AccountHandler) Orders(w http.ResponseWriter, r *http.Request) {
	token, ok := contextutil.GetTokenFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	orders, err := h.ShopAPI.Orders(r.Context(), token)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	if orders == nil {
		orders = []order.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// UpdateProfile - PATCH /api/account/profile
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	token, ok := contextutil.GetTokenFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	var form user.UpdateProfileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	me, err := h.ShopAPI.UpdateProfile(r.Context(), token, form)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(me); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
