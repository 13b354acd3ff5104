package gallery

// Item - элемент фотогалереи
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Order    int    `json:"order"`
}

// CreateItem - форма для добавления элемента галереи в админке
type CreateItem struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Order    int    `json:"order"`
}
