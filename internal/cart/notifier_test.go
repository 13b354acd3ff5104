package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"socialsh-front/internal/storage"
)

func TestNotifierFanOut(t *testing.T) {
	n := NewNotifier()

	var first, second []string
	n.Subscribe(func(key string) { first = append(first, key) })
	n.Subscribe(func(key string) { second = append(second, key) })

	n.Notify("socialsh_cart:a")
	n.Notify("socialsh_cart:b")

	assert.Equal(t, []string{"socialsh_cart:a", "socialsh_cart:b"}, first)
	assert.Equal(t, []string{"socialsh_cart:a", "socialsh_cart:b"}, second)
}

// Каждая мутация корзины дает ровно одно оповещение, no-op - ни одного
func TestStoreNotifiesOnMutations(t *testing.T) {
	n := NewNotifier()
	logger := zaptest.NewLogger(t).Sugar()
	s := NewStore(storage.NewMemoryStorage(), n, logger, Key("p"))
	ctx := context.Background()

	count := 0
	n.Subscribe(func(string) { count++ })

	s.Add(ctx, NewLine{ProductID: "p1", Title: "Shirt", Price: 100})
	assert.Equal(t, 1, count)

	s.UpdateQuantity(ctx, "p1", 3)
	assert.Equal(t, 2, count)

	// Апдейт отсутствующего товара ничего не меняет и не оповещает
	s.UpdateQuantity(ctx, "nope", 3)
	assert.Equal(t, 2, count)

	s.Remove(ctx, "p1")
	assert.Equal(t, 3, count)

	s.Clear(ctx)
	assert.Equal(t, 4, count)

	// Чтения не оповещают
	s.Read(ctx)
	s.TotalItems(ctx)
	assert.Equal(t, 4, count)
}
