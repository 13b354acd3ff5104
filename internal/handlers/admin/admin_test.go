package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"socialsh-front/internal/middleware"
	"socialsh-front/internal/mocks"
	"socialsh-front/internal/session"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/gallery"
	"socialsh-front/internal/types/page"
	"socialsh-front/internal/types/product"
)

const adminToken = "admin-token"

func setup(t *testing.T) (*AdminHandler, *mocks.MockShopAPI) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockShopAPI(ctrl)

	return NewAdminHandler(zap.NewNop().Sugar(), api), api
}

func adminRequest(method, target, body string, vars map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	sess := &session.Session{ID: "sess-1", ProfileID: "profile-1", Access: adminToken}
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func TestListProducts(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		AdminListProducts(gomock.Any(), adminToken).
		Return([]product.Product{{ID: "p1", Slug: "shirt"}}, nil)

	w := httptest.NewRecorder()
	h.ListProducts(w, adminRequest(http.MethodGet, "/api/admin/products", "", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shirt")
}

func TestCreateProduct(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		AdminCreateProduct(gomock.Any(), adminToken, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, form product.CreateProduct) (*product.Product, error) {
			assert.Equal(t, "shirt", form.Slug)
			assert.Equal(t, int64(250000), form.Price)

			return &product.Product{ID: "p1", Slug: form.Slug, Price: form.Price}, nil
		})

	body := `{"slug":"shirt","title":"Shirt","price":250000,"currency":"RUB"}`
	w := httptest.NewRecorder()
	h.CreateProduct(w, adminRequest(http.MethodPost, "/api/admin/products", body, nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"p1"`)
}

func TestUpdateProduct(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		AdminUpdateProduct(gomock.Any(), adminToken, "p1", gomock.Any()).
		Return(&product.Product{ID: "p1", Slug: "shirt-v2"}, nil)

	body := `{"slug":"shirt-v2"}`
	w := httptest.NewRecorder()
	h.UpdateProduct(w, adminRequest(http.MethodPatch, "/api/admin/products/p1", body,
		map[string]string{"id": "p1"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shirt-v2")
}

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name           string
		mockBehavior   func(api *mocks.MockShopAPI)
		expectedStatus int
	}{
		{
			name: "успешное удаление",
			mockBehavior: func(api *mocks.MockShopAPI) {
				api.EXPECT().AdminDeleteProduct(gomock.Any(), adminToken, "p1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "товара нет",
			mockBehavior: func(api *mocks.MockShopAPI) {
				api.EXPECT().AdminDeleteProduct(gomock.Any(), adminToken, "p1").Return(myErr.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "API отозвало права",
			mockBehavior: func(api *mocks.MockShopAPI) {
				api.EXPECT().AdminDeleteProduct(gomock.Any(), adminToken, "p1").Return(myErr.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api := setup(t)
			tt.mockBehavior(api)

			w := httptest.NewRecorder()
			h.DeleteProduct(w, adminRequest(http.MethodDelete, "/api/admin/products/p1", "",
				map[string]string{"id": "p1"}))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCreateGalleryItem(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		AdminCreateGalleryItem(gomock.Any(), adminToken, gomock.Any()).
		Return(&gallery.Item{ID: "g1"}, nil)

	body := `{"image":"/lookbook/1.jpg","category":"street"}`
	w := httptest.NewRecorder()
	h.CreateGalleryItem(w, adminRequest(http.MethodPost, "/api/admin/gallery", body, nil))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdatePage(t *testing.T) {
	h, api := setup(t)

	api.EXPECT().
		AdminUpdatePage(gomock.Any(), adminToken, "delivery", gomock.Any()).
		Return(&page.Page{Slug: "delivery", Title: "Доставка"}, nil)

	body := `{"slug":"delivery","title":"Доставка","content":"..."}`
	w := httptest.NewRecorder()
	h.UpdatePage(w, adminRequest(http.MethodPatch, "/api/admin/pages/delivery", body,
		map[string]string{"slug": "delivery"}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWithoutSession(t *testing.T) {
	h, _ := setup(t)

	w := httptest.NewRecorder()
	h.ListProducts(w, httptest.NewRequest(http.MethodGet, "/api/admin/products", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
