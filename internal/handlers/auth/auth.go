package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"socialsh-front/internal/middleware"
	"socialsh-front/internal/session"
	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/user"
)

// AuthHandler логин и регистрация. Пароли не храним и не хэшируем -
// они сквозняком уходят во внешнее API, обратно приходят токены,
// которые мы складываем в сессию. Профиль корзины при логине не меняется:
// анонимная корзина продолжает жить у того же покупателя.
type AuthHandler struct {
	Logger   *zap.SugaredLogger
	ShopAPI  shopapi.ShopAPI
	Sessions session.SessionRepo
}

// NewAuthHandler конструктор
func NewAuthHandler(log *zap.SugaredLogger, api shopapi.ShopAPI, sessions session.SessionRepo) *AuthHandler {
	return &AuthHandler{
		Logger:   log,
		ShopAPI:  api,
		Sessions: sessions,
	}
}

func (h *AuthHandler) storeTokens(w http.ResponseWriter, r *http.Request, tokens *user.Tokens) error {
	sess, err := h.Sessions.Ensure(r.Context(), w, r)
	if err != nil {
		return err
	}

	sess.Access = tokens.Access
	sess.Refresh = tokens.Refresh

	return h.Sessions.Save(r.Context(), sess)
}

// SignIn - POST /api/auth/sign-in
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var form user.SignInForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	tokens, err := h.ShopAPI.SignIn(r.Context(), form)
	if err != nil {
		if errors.Is(err, myErr.ErrUnauthorized) {
			myErr.SendErrorTo(w, err, http.StatusUnauthorized, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}

	if err := h.storeTokens(w, r, tokens); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("user %s signed in", form.Email)
	myErr.SendErrorTo(w, nil, http.StatusOK, h.Logger)
}

// SignUp - POST /api/auth/sign-up
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var form user.SignUpForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	tokens, err := h.ShopAPI.SignUp(r.Context(), form)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
		return
	}

	if err := h.storeTokens(w, r, tokens); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("user %s signed up", form.Email)
	myErr.SendErrorTo(w, nil, http.StatusCreated, h.Logger)
}

// Logout - POST /api/auth/logout
// Токены стираются, сессия и корзина остаются
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	sess.Access = ""
	sess.Refresh = ""
	if err := h.Sessions.Save(r.Context(), sess); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	myErr.SendErrorTo(w, nil, http.StatusOK, h.Logger)
}

// IsAdmin - GET /api/auth/is-admin
func (h *AuthHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	isAdmin, err := h.ShopAPI.IsAdmin(r.Context(), sess.Access)
	if err != nil {
		if errors.Is(err, myErr.ErrUnauthorized) {
			// Невалидный токен - значит не админ
			isAdmin = false
		} else {
			myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"isAdmin": isAdmin}); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
