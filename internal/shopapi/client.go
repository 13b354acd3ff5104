package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	myErr "socialsh-front/internal/types/errors"
	"socialsh-front/internal/types/gallery"
	"socialsh-front/internal/types/order"
	"socialsh-front/internal/types/page"
	"socialsh-front/internal/types/product"
	"socialsh-front/internal/types/user"
)

// Client - HTTP-реализация ShopAPI
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.SugaredLogger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Logger: logger,
	}
}

// itemsResponse - обертка списочных ответов API: {"items": [...]}
type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// apiError - тело ошибки внешнего API: {"error": "..."} или {"message": "..."}
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do выполняет запрос к API: сериализует body, подставляет Bearer-токен,
// разбирает тело ошибки. 401/403 схлопываются в ErrUnauthorized, чтобы
// middleware мог сбросить сессию и увести на логин.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Warnw("Shop API request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", myErr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return myErr.ErrUnauthorized
	}

	if resp.StatusCode == http.StatusNotFound {
		return myErr.ErrNotFound
	}

	if resp.StatusCode >= 400 {
		var ae apiError
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil {
			if ae.Error != "" {
				message = ae.Error
			} else if ae.Message != "" {
				message = ae.Message
			}
		}

		return fmt.Errorf("%w: %s", myErr.ErrUpstream, message)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Logger.Warnw("Failed to decode shop API response", "path", path, "err", err)
		return fmt.Errorf("%w: bad response body", myErr.ErrUpstream)
	}

	return nil
}

func (c *Client) Products(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	query := url.Values{}
	if filter.New {
		query.Set("new", "true")
	}
	if filter.Sale {
		query.Set("sale", "true")
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var resp itemsResponse[product.Product]
	if err := c.do(ctx, http.MethodGet, "/api/products?"+query.Encode(), "", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (*product.Product, error) {
	var resp struct {
		Item product.Product `json:"item"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(slug), "", nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Item, nil
}

func (c *Client) SearchProducts(ctx context.Context, q string, pageNum, limit int) ([]product.Product, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("page", strconv.Itoa(pageNum))
	query.Set("limit", strconv.Itoa(limit))

	var resp itemsResponse[product.Product]
	if err := c.do(ctx, http.MethodGet, "/api/products/search?"+query.Encode(), "", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) GalleryItems(ctx context.Context, category string) ([]gallery.Item, error) {
	path := "/api/gallery"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var resp itemsResponse[gallery.Item]
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) PageBySlug(ctx context.Context, slug string) (*page.Page, error) {
	var p page.Page
	if err := c.do(ctx, http.MethodGet, "/api/pages/"+url.PathEscape(slug), "", nil, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) SignIn(ctx context.Context, form user.SignInForm) (*user.Tokens, error) {
	var tokens user.Tokens
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", "", form, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

func (c *Client) SignUp(ctx context.Context, form user.SignUpForm) (*user.Tokens, error) {
	var tokens user.Tokens
	if err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", "", form, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

func (c *Client) Refresh(ctx context.Context, refresh string) (*user.Tokens, error) {
	body := map[string]string{"refresh": refresh}

	var tokens user.Tokens
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", "", body, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

func (c *Client) IsAdmin(ctx context.Context, token string) (bool, error) {
	var resp struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/is-admin", token, nil, &resp); err != nil {
		return false, err
	}

	return resp.IsAdmin, nil
}

func (c *Client) Me(ctx context.Context, token string) (*user.User, error) {
	var resp struct {
		User user.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/account/me", token, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

func (c *Client) Orders(ctx context.Context, token string) ([]order.Order, error) {
	var resp itemsResponse[order.Order]
	if err := c.do(ctx, http.MethodGet, "/api/account/orders", token, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, form user.UpdateProfileForm) (*user.User, error) {
	var resp struct {
		User user.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/account/me", token, form, &resp); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, req order.CreateOrder) (*order.Created, error) {
	var created order.Created
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}
