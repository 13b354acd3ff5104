package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"socialsh-front/internal/contextutil"
	"socialsh-front/internal/shopapi"
	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/gallery"
	"socialsh-front/internal/types/page"
	"socialsh-front/internal/types/product"
)

// AdminHandler админка: CRUD товаров, галереи и страниц. Своего состояния
// нет - всё живёт во внешнем API, мы проксируем запросы с токеном админа.
// Висит за Auth + AdminOnly.
type AdminHandler struct {
	Logger  *zap.SugaredLogger
	ShopAPI shopapi.ShopAPI
}

// NewAdminHandler конструктор
func NewAdminHandler(log *zap.SugaredLogger, api shopapi.ShopAPI) *AdminHandler {
	return &AdminHandler{
		Logger:  log,
		ShopAPI: api,
	}
}

func (h *AdminHandler) token(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, ok := contextutil.GetTokenFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return "", false
	}
	return token, true
}

func (h *AdminHandler) sendJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

func (h *AdminHandler) sendUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, myErr.ErrUnauthorized):
		myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, h.Logger)
	case errors.Is(err, myErr.ErrNotFound):
		myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
	default:
		myErr.SendErrorTo(w, err, http.StatusBadGateway, h.Logger)
	}
}

// ListProducts - GET /api/admin/products
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	products, err := h.ShopAPI.AdminListProducts(r.Context(), token)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	if products == nil {
		products = []product.Product{}
	}

	h.sendJSON(w, map[string]interface{}{"items": products})
}

// GetProduct - GET /api/admin/products/{id}
func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ShopAPI.AdminProduct(r.Context(), token, id)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, p)
}

// CreateProduct - POST /api/admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	var form product.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ShopAPI.AdminCreateProduct(r.Context(), token, form)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	h.sendJSON(w, p)
}

// UpdateProduct - PATCH /api/admin/products/{id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var form product.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ShopAPI.AdminUpdateProduct(r.Context(), token, id, form)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, p)
}

// DeleteProduct - DELETE /api/admin/products/{id}
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.ShopAPI.AdminDeleteProduct(r.Context(), token, id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	myErr.SendErrorTo(w, nil, http.StatusOK, h.Logger)
}

// ListGallery - GET /api/admin/gallery
func (h *AdminHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	items, err := h.ShopAPI.AdminListGallery(r.Context(), token)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	if items == nil {
		items = []gallery.Item{}
	}

	h.sendJSON(w, map[string]interface{}{"items": items})
}

// CreateGalleryItem - POST /api/admin/gallery
func (h *AdminHandler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	var form gallery.CreateItem
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	item, err := h.ShopAPI.AdminCreateGalleryItem(r.Context(), token, form)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	h.sendJSON(w, item)
}

// UpdateGalleryItem - PATCH /api/admin/gallery/{id}
func (h *AdminHandler) UpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var form gallery.CreateItem
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	item, err := h.ShopAPI.AdminUpdateGalleryItem(r.Context(), token, id, form)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, item)
}

// DeleteGalleryItem - DELETE /api/admin/gallery/{id}
func (h *AdminHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.ShopAPI.AdminDeleteGalleryItem(r.Context(), token, id); err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	myErr.SendErrorTo(w, nil, http.StatusOK, h.Logger)
}

// ListPages - GET /api/admin/pages
func (h *AdminHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	pages, err := h.ShopAPI.AdminListPages(r.Context(), token)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	if pages == nil {
		pages = []page.Page{}
	}

	h.sendJSON(w, map[string]interface{}{"items": pages})
}

// UpdatePage - PATCH /api/admin/pages/{slug}
func (h *AdminHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	slug := mux.Vars(r)["slug"]
	if slug == "" {
		myErr.SendErrorTo(w, myErr.ErrBadSlug, http.StatusBadRequest, h.Logger)
		return
	}

	var form page.Page
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	p, err := h.ShopAPI.AdminUpdatePage(r.Context(), token, slug, form)
	if err != nil {
		h.sendUpstreamError(w, err)
		return
	}

	h.sendJSON(w, p)
}
