package articles

import (
	"context"
	"sync"
)

// inflightGuard сериализует операции над одним id.
// Операции над разными id выполняются параллельно.
// Записи удаляются, когда последняя операция по id завершилась.
type inflightGuard struct {
	slots map[string]*slot
	mu    sync.Mutex
}

type slot struct {
	sem  chan struct{}
	refs int
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{slots: make(map[string]*slot)}
}

// acquire ждет освобождения id. Ожидание прерывается отменой ctx.
func (g *inflightGuard) acquire(ctx context.Context, id string) (func(), error) {
	g.mu.Lock()
	s, ok := g.slots[id]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		g.slots[id] = s
	}
	s.refs++
	g.mu.Unlock()

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		g.unref(id, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.sem
			g.unref(id, s)
		})
	}, nil
}

func (g *inflightGuard) unref(id string, s *slot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(g.slots, id)
	}
}

// len количество id с активными или ожидающими операциями
func (g *inflightGuard) len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.slots)
}
