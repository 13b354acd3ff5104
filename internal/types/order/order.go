package order

import "time"

// Order - заказ пользователя, как его отдает внешнее API
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"` // pending | paid | shipped | delivered | cancelled
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	Items     []Item    `json:"items"`
}

// Item - одна позиция заказа: что, сколько штук, по какой цене на момент покупки
type Item struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CreateItem - позиция в запросе на создание заказа (снимок строки корзины)
type CreateItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Customer - контактные данные покупателя
type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Address  string `json:"address,omitempty"`
}

// CreateOrder - тело запроса на создание заказа
type CreateOrder struct {
	Items    []CreateItem `json:"items"`
	Customer Customer     `json:"customer"`
	Comment  string       `json:"comment,omitempty"`
	Total    int64        `json:"total"`
}

// Created - ответ внешнего API на создание заказа
type Created struct {
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}
