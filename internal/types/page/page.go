package page

// Page - статическая инфо-страница (оплата, доставка, возврат, контакты)
type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
