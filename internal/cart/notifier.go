package cart

import "sync"

// Notifier - явная регистрация наблюдателей вместо неявной шины событий.
// Сигнал "корзина изменилась" не несет полезной нагрузки: подписчики сами
// перечитывают состояние через Read/TotalItems.
type Notifier struct {
	mu          sync.Mutex
	subscribers []func(key string)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe регистрирует наблюдателя. Отписки нет: подписчики живут
// столько же, сколько процесс.
func (n *Notifier) Subscribe(fn func(key string)) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.subscribers = append(n.subscribers, fn)
}

// Notify синхронно оповещает всех подписчиков об изменении корзины key
func (n *Notifier) Notify(key string) {
	n.mu.Lock()
	subscribers := make([]func(key string), len(n.subscribers))
	copy(subscribers, n.subscribers)
	n.mu.Unlock()

	for _, fn := range subscribers {
		fn(key)
	}
}
