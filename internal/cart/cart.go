package cart

// KeyPrefix - well-known префикс ключа корзины в хранилище.
// Полный ключ: socialsh_cart:<profileID>, один на профиль покупателя.
const KeyPrefix = "socialsh_cart"

// Line - строка корзины: товар, количество и снимок витринных полей.
// Title/Price/Image фиксируются в момент добавления и дальше с каталогом
// не синхронизируются - покупатель видит ту цену, по которой добавлял.
type Line struct {
	ProductID string `json:"productId"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Currency  string `json:"currency"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// NewLine - входная форма добавления: строка без количества.
// Количество назначает сам Store (1 для новой строки, +1 для существующей).
type NewLine struct {
	ProductID string `json:"productId"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Currency  string `json:"currency"`
	Image     string `json:"image"`
}

// Key строит ключ корзины для профиля покупателя
func Key(profileID string) string {
	return KeyPrefix + ":" + profileID
}
