package cache

import (
	"context"
	"time"

	"github.com/iudanet/articlekeeper/internal/client/storage"
	"github.com/iudanet/articlekeeper/internal/models"
)

// DefaultLimit количество элементов коллекции, сохраняемых локально
const DefaultLimit = 10

// Bounded сохраняет только первые limit элементов коллекции.
// Кэш служит запасным источником при старте и никогда не содержит больше limit элементов.
type Bounded struct {
	items storage.ItemCache
	now   func() time.Time
	limit int
}

// NewBounded создает ограниченный кэш поверх ItemCache.
// limit <= 0 заменяется на DefaultLimit.
func NewBounded(items storage.ItemCache, limit int) *Bounded {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Bounded{items: items, limit: limit, now: time.Now}
}

// Limit возвращает максимальное число хранимых элементов
func (b *Bounded) Limit() int {
	return b.limit
}

// Save сохраняет первые limit элементов с текущим временем снимка
func (b *Bounded) Save(ctx context.Context, key string, items []models.ContentItem) error {
	n := min(len(items), b.limit)
	captured := b.now().UTC()

	entries := make([]models.CachedItem, 0, n)
	for _, item := range items[:n] {
		entries = append(entries, models.CachedItem{CapturedAt: captured, Item: item.Clone()})
	}

	return b.items.SaveItems(ctx, key, entries)
}

// Load возвращает сохраненные элементы в исходном порядке
func (b *Bounded) Load(ctx context.Context, key string) ([]models.ContentItem, error) {
	entries, err := b.items.LoadItems(ctx, key)
	if err != nil {
		return nil, err
	}

	// Запись, сделанная с большим лимитом, обрезается при чтении
	n := min(len(entries), b.limit)
	items := make([]models.ContentItem, 0, n)
	for _, e := range entries[:n] {
		items = append(items, e.Item)
	}
	return items, nil
}
