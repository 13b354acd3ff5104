package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"socialsh-front/internal/cart"
	"socialsh-front/internal/kafka"
	"socialsh-front/internal/mocks"
	"socialsh-front/internal/session"
	"socialsh-front/internal/storage"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/order"
)

const testProfileID = "profile-1"

func setup(t *testing.T) (*CheckoutHandler, *mocks.MockShopAPI, *kafka.MockEventProducer, *cart.Stores) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := zap.NewNop().Sugar()
	api := mocks.NewMockShopAPI(ctrl)
	sessions := mocks.NewMockSessionRepo(ctrl)
	producer := kafka.NewMockEventProducer(ctrl)
	carts := cart.NewStores(storage.NewMemoryStorage(), cart.NewNotifier(), logger)

	sessions.EXPECT().
		Ensure(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&session.Session{ID: "sess-1", ProfileID: testProfileID, Access: "token-1"}, nil).
		AnyTimes()

	return NewCheckoutHandler(logger, carts, sessions, api, producer), api, producer, carts
}

func fillCart(carts *cart.Stores) *cart.Store {
	store := carts.For(testProfileID)
	store.Add(context.Background(), cart.NewLine{ProductID: "p1", Title: "Shirt", Price: 250000, Currency: "RUB"})
	store.Add(context.Background(), cart.NewLine{ProductID: "p1", Title: "Shirt", Price: 250000, Currency: "RUB"})
	store.Add(context.Background(), cart.NewLine{ProductID: "p2", Title: "Hoodie", Price: 490000, Currency: "RUB"})

	return store
}

const checkoutBody = `{"customer":{"name":"Ivan","email":"ivan@example.com","phone":"+79990000000"},"comment":"позвоните заранее"}`

func TestSubmit(t *testing.T) {
	h, api, producer, carts := setup(t)
	store := fillCart(carts)

	api.EXPECT().
		CreateOrder(gomock.Any(), "token-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req order.CreateOrder) (*order.Created, error) {
			assert.Equal(t, 2, len(req.Items))
			assert.Equal(t, order.CreateItem{ProductID: "p1", Quantity: 2, Price: 250000}, req.Items[0])
			assert.Equal(t, order.CreateItem{ProductID: "p2", Quantity: 1, Price: 490000}, req.Items[1])
			assert.Equal(t, int64(990000), req.Total)
			assert.Equal(t, "Ivan", req.Customer.Name)

			return &order.Created{Message: "order accepted", OrderID: "ord-42"}, nil
		})

	producer.EXPECT().
		SendEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, event kafka.Event) error {
			assert.Equal(t, kafka.EventTypePurchase, event.Type)
			assert.Equal(t, []string{"p1", "p2"}, event.ProductIDs)
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created order.Created
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "ord-42", created.OrderID)

	// Корзина очищена после успешного заказа
	assert.Equal(t, []cart.Line{}, store.Read(context.Background()))
}

func TestSubmitEmptyCart(t *testing.T) {
	h, _, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitInvalidJSON(t *testing.T) {
	h, _, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader("{oops"))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// При отказе внешнего API корзина не трогается
func TestSubmitUpstreamFailureKeepsCart(t *testing.T) {
	tests := []struct {
		name           string
		apiErr         error
		expectedStatus int
	}{
		{
			name:           "токен протух",
			apiErr:         myErr.ErrUnauthorized,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "сервис заказов лежит",
			apiErr:         myErr.ErrUpstream,
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api, _, carts := setup(t)
			store := fillCart(carts)

			api.EXPECT().
				CreateOrder(gomock.Any(), "token-1", gomock.Any()).
				Return(nil, tt.apiErr)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(checkoutBody))
			w := httptest.NewRecorder()

			h.Submit(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, 3, store.TotalItems(context.Background()))
		})
	}
}
