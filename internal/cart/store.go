package cart

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"socialsh-front/internal/storage"
	myErr "socialsh-front/internal/types/errors"
)

// Store владеет корзиной одного профиля покупателя: единственный ключ в
// хранилище, операции чтения/мутации и производные суммы. Все операции
// fail-soft: сбой хранилища логируется, но наружу никогда не отдается -
// корзина это best-effort кеш, заказ все равно перепроверит внешнее API.
type Store struct {
	Storage  storage.Storage
	Notifier *Notifier
	Logger   *zap.SugaredLogger
	Key      string
}

func NewStore(st storage.Storage, notifier *Notifier, logger *zap.SugaredLogger, key string) *Store {
	return &Store{
		Storage:  st,
		Notifier: notifier,
		Logger:   logger,
		Key:      key,
	}
}

// Read возвращает текущую корзину. Никогда не падает: отсутствующий или
// битый блоб означает пустую корзину.
func (s *Store) Read(ctx context.Context) []Line {
	lines, err := s.load(ctx)
	if err != nil {
		// Уже залогировано в load
		return []Line{}
	}

	return lines
}

// Add добавляет товар в корзину. Если строка с таким ProductID уже есть,
// увеличивает количество на 1 и сохраняет первый снимок витринных полей,
// даже если вызывающий передал другие значения.
func (s *Store) Add(ctx context.Context, item NewLine) {
	lines := s.Read(ctx)

	merged := false
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity++
			merged = true
			break
		}
	}

	if !merged {
		lines = append(lines, Line{
			ProductID: item.ProductID,
			Slug:      item.Slug,
			Title:     item.Title,
			Price:     item.Price,
			Currency:  item.Currency,
			Image:     item.Image,
			Quantity:  1,
		})
	}

	s.save(ctx, lines)
	s.Notifier.Notify(s.Key)
}

// Remove удаляет строку с данным ProductID. Если ее нет - no-op, не ошибка.
func (s *Store) Remove(ctx context.Context, productID string) {
	lines := s.Read(ctx)

	filtered := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			filtered = append(filtered, line)
		}
	}

	s.save(ctx, filtered)
	s.Notifier.Notify(s.Key)
}

// UpdateQuantity выставляет количество строки ровно в quantity.
// Неположительное количество означает удаление строки: в корзине не бывает
// строк с quantity < 1. No-op, если товара в корзине нет.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}

	lines := s.Read(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			s.save(ctx, lines)
			s.Notifier.Notify(s.Key)
			break
		}
	}
}

// Clear сохраняет пустую корзину. Вызывается после успешного оформления заказа.
func (s *Store) Clear(ctx context.Context) {
	s.save(ctx, []Line{})
	s.Notifier.Notify(s.Key)
}

// TotalItems - суммарное количество товаров по всем строкам
func (s *Store) TotalItems(ctx context.Context) int {
	total := 0
	for _, line := range s.Read(ctx) {
		total += line.Quantity
	}

	return total
}

// TotalPrice - сумма корзины в копейках. Валюты не конвертируются:
// каталог живет в одной валюте.
func (s *Store) TotalPrice(ctx context.Context) int64 {
	var total int64
	for _, line := range s.Read(ctx) {
		total += line.Price * int64(line.Quantity)
	}

	return total
}

// load читает и разбирает блоб корзины. Ошибка видна только изнутри
// пакета (и тестам) - публичный контракт ее глотает.
func (s *Store) load(ctx context.Context) ([]Line, error) {
	blob, err := s.Storage.Get(ctx, s.Key)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			// Корзины еще не было - это не сбой
			return []Line{}, nil
		}

		s.Logger.Warnw("Failed to read cart, degrading to empty", "key", s.Key, "err", err)
		return []Line{}, err
	}

	var lines []Line
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		s.Logger.Warnw("Corrupt cart blob, degrading to empty", "key", s.Key, "err", err)
		return []Line{}, err
	}

	return lines, nil
}

// save сериализует и пишет корзину. Сбой записи логируется и глотается:
// вызывающий продолжает работу так, как будто запись удалась.
func (s *Store) save(ctx context.Context, lines []Line) {
	if lines == nil {
		lines = []Line{}
	}

	blob, err := json.Marshal(lines)
	if err != nil {
		s.Logger.Errorw("Failed to marshal cart", "key", s.Key, "err", err)
		return
	}

	if err := s.Storage.Set(ctx, s.Key, string(blob)); err != nil {
		s.Logger.Warnw("Failed to save cart, dropping write", "key", s.Key, "err", err)
	}
}
