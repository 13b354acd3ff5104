package product

// Product - товар каталога, отдается внешним API магазина.
// Цена хранится в копейках (4990 = 49.90), чтобы не терять точность на float.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Images      []string `json:"images"`
	IsNew       bool     `json:"isNew"`
	IsOnSale    bool     `json:"isOnSale"`
}

// Filter - query-параметры списка товаров
type Filter struct {
	New   bool
	Sale  bool
	Page  int
	Limit int
}

// CreateProduct - форма для создания товара в админке (без ID)
type CreateProduct struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Images      []string `json:"images"`
	IsNew       bool     `json:"isNew"`
	IsOnSale    bool     `json:"isOnSale"`
}
