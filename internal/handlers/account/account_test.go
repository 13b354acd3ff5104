package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"socialsh-front/internal/middleware"
	"socialsh-front/internal/mocks"
	"socialsh-front/internal/session"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/order"
	"socialsh-front/internal/types/user"
)

func setup(t *testing.T) (*AccountHandler, *mocks.MockShopAPI) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockShopAPI(ctrl)

	return NewAccountHandler(zap.NewNop().Sugar(), api), api
}

func authRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	sess := &session.Session{ID: "sess-1", ProfileID: "profile-1", Access: "acc-1"}
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func TestMe(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		Me(gomock.Any(), "acc-1").
		Return(&user.User{ID: "u1", Name: "Ivan", Email: "ivan@example.com"}, nil)

	w := httptest.NewRecorder()
	h.Me(w, authRequest(http.MethodGet, "/api/account/me", ""))

	assert.Equal(t, http.StatusOK, w.Code)

	var me user.User
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&me))
	assert.Equal(t, "ivan@example.com", me.Email)
}

func TestMeWithoutSession(t *testing.T) {
	h, _ := setup(t)

	w := httptest.NewRecorder()
	h.Me(w, httptest.NewRequest(http.MethodGet, "/api/account/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Протухший во внешнем API токен отдаем как 401, а не 502
func TestMeUnauthorizedUpstream(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		Me(gomock.Any(), "acc-1").
		Return(nil, myErr.ErrUnauthorized)

	w := httptest.NewRecorder()
	h.Me(w, authRequest(http.MethodGet, "/api/account/me", ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrders(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		Orders(gomock.Any(), "acc-1").
		Return([]order.Order{{ID: "ord-1"}, {ID: "ord-2"}}, nil)

	w := httptest.NewRecorder()
	h.Orders(w, authRequest(http.MethodGet, "/api/account/orders", ""))

	assert.Equal(t, http.StatusOK, w.Code)

	var orders []order.Order
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
	assert.Equal(t, 2, len(orders))
}

func TestOrdersEmpty(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		Orders(gomock.Any(), "acc-1").
		Return(nil, nil)

	w := httptest.NewRecorder()
	h.Orders(w, authRequest(http.MethodGet, "/api/account/orders", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUpdateProfile(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		UpdateProfile(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, form user.UpdateProfileForm) (*user.User, error) {
			assert.NotNil(t, form.Name)
			assert.Equal(t, "Pyotr", *form.Name)
			assert.Nil(t, form.Email)

			return &user.User{ID: "u1", Name: "Pyotr"}, nil
		})

	w := httptest.NewRecorder()
	h.UpdateProfile(w, authRequest(http.MethodPatch, "/api/account/profile", `{"name":"Pyotr"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pyotr")
}

func TestUpdateProfileInvalidJSON(t *testing.T) {
	h, _ := setup(t)

	w := httptest.NewRecorder()
	h.UpdateProfile(w, authRequest(http.MethodPatch, "/api/account/profile", "{oops"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
