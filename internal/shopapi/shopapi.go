package shopapi

import (
	"context"

	"socialsh-front/internal/types/gallery"
	"socialsh-front/internal/types/order"
	"socialsh-front/internal/types/page"
	"socialsh-front/internal/types/product"
	"socialsh-front/internal/types/user"
)

// ShopAPI - обертка над внешним API магазина. Весь каталог, заказы,
// аккаунты и контент живут за этим HTTP-рубежом; мы только ходим туда
// с токеном покупателя и разбираем ответы.
//
//go:generate mockgen -source=shopapi.go -destination=../mocks/mock_shop_api.go -package=mocks
type ShopAPI interface {
	// Каталог
	Products(ctx context.Context, filter product.Filter) ([]product.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*product.Product, error)
	SearchProducts(ctx context.Context, query string, pageNum, limit int) ([]product.Product, error)

	// Галерея и инфо-страницы
	GalleryItems(ctx context.Context, category string) ([]gallery.Item, error)
	PageBySlug(ctx context.Context, slug string) (*page.Page, error)

	// Авторизация (жизненный цикл токенов целиком на стороне API)
	SignIn(ctx context.Context, form user.SignInForm) (*user.Tokens, error)
	SignUp(ctx context.Context, form user.SignUpForm) (*user.Tokens, error)
	Refresh(ctx context.Context, refresh string) (*user.Tokens, error)
	IsAdmin(ctx context.Context, token string) (bool, error)

	// Личный кабинет
	Me(ctx context.Context, token string) (*user.User, error)
	Orders(ctx context.Context, token string) ([]order.Order, error)
	UpdateProfile(ctx context.Context, token string, form user.UpdateProfileForm) (*user.User, error)

	// Оформление заказа
	CreateOrder(ctx context.Context, token string, req order.CreateOrder) (*order.Created, error)

	// Админка
	AdminListProducts(ctx context.Context, token string) ([]product.Product, error)
	AdminProduct(ctx context.Context, token, id string) (*product.Product, error)
	AdminCreateProduct(ctx context.Context, token string, form product.CreateProduct) (*product.Product, error)
	AdminUpdateProduct(ctx context.Context, token, id string, form product.CreateProduct) (*product.Product, error)
	AdminDeleteProduct(ctx context.Context, token, id string) error
	AdminListGallery(ctx context.Context, token string) ([]gallery.Item, error)
	AdminCreateGalleryItem(ctx context.Context, token string, form gallery.CreateItem) (*gallery.Item, error)
	AdminUpdateGalleryItem(ctx context.Context, token, id string, form gallery.CreateItem) (*gallery.Item, error)
	AdminDeleteGalleryItem(ctx context.Context, token, id string) error
	AdminListPages(ctx context.Context, token string) ([]page.Page, error)
	AdminUpdatePage(ctx context.Context, token, slug string, form page.Page) (*page.Page, error)
}
