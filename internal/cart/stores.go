package cart

import (
	"go.uber.org/zap"

	"socialsh-front/internal/storage"
)

// Stores раздает Store по профилям покупателей поверх общего хранилища.
// Store дешевый и создается на запрос; состояние живет в Storage,
// подписчики - в общем Notifier.
type Stores struct {
	Storage  storage.Storage
	Notifier *Notifier
	Logger   *zap.SugaredLogger
}

func NewStores(st storage.Storage, notifier *Notifier, logger *zap.SugaredLogger) *Stores {
	return &Stores{
		Storage:  st,
		Notifier: notifier,
		Logger:   logger,
	}
}

// For возвращает Store, привязанный к корзине профиля profileID
func (cs *Stores) For(profileID string) *Store {
	return NewStore(cs.Storage, cs.Notifier, cs.Logger, Key(profileID))
}
