package shopapi

import (
	"context"
	"net/http"
	"net/url"

	"socialsh-front/internal/types/gallery"
	"socialsh-front/internal/types/page"
	"socialsh-front/internal/types/product"
)

// Админские методы. Токен обязателен; права проверяет само API,
// мы лишь транслируем его 403 как ErrUnauthorized.

func (c *Client) AdminListProducts(ctx context.Context, token string) ([]product.Product, error) {
	var resp itemsResponse[product.Product]
	if err := c.do(ctx, http.MethodGet, "/api/admin/products", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) AdminProduct(ctx context.Context, token, id string) (*product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodGet, "/api/admin/products/"+url.PathEscape(id), token, nil, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) AdminCreateProduct(ctx context.Context, token string, form product.CreateProduct) (*product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodPost, "/api/admin/products", token, form, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) AdminUpdateProduct(ctx context.Context, token, id string, form product.CreateProduct) (*product.Product, error) {
	var p product.Product
	if err := c.do(ctx, http.MethodPatch, "/api/admin/products/"+url.PathEscape(id), token, form, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) AdminDeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) AdminListGallery(ctx context.Context, token string) ([]gallery.Item, error) {
	var resp itemsResponse[gallery.Item]
	if err := c.do(ctx, http.MethodGet, "/api/admin/gallery", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) AdminCreateGalleryItem(ctx context.Context, token string, form gallery.CreateItem) (*gallery.Item, error) {
	var item gallery.Item
	if err := c.do(ctx, http.MethodPost, "/api/admin/gallery", token, form, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *Client) AdminUpdateGalleryItem(ctx context.Context, token, id string, form gallery.CreateItem) (*gallery.Item, error) {
	var item gallery.Item
	if err := c.do(ctx, http.MethodPatch, "/api/admin/gallery/"+url.PathEscape(id), token, form, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (c *Client) AdminDeleteGalleryItem(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/gallery/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) AdminListPages(ctx context.Context, token string) ([]page.Page, error) {
	var resp itemsResponse[page.Page]
	if err := c.do(ctx, http.MethodGet, "/api/admin/pages", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) AdminUpdatePage(ctx context.Context, token, slug string, form page.Page) (*page.Page, error) {
	var p page.Page
	if err := c.do(ctx, http.MethodPatch, "/api/admin/pages/"+url.PathEscape(slug), token, form, &p); err != nil {
		return nil, err
	}

	return &p, nil
}
