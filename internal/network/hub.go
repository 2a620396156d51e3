package network

import (
	"sync"

	"github.com/theDrake/pebblequest-sub000/pkg/api"
)

// Broadcaster занимается только доставкой кадров подписчикам.
// Ключ - ID сессии; у каждой сессии не больше одного подписчика.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan api.ServerMessage
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
	}
}

// Register создает личный канал для сессии.
// Повторная регистрация вытесняет старого подписчика.
func (b *Broadcaster) Register(sessionID string) chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerMessage, 64)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика. Channel может быть уже вытеснен
// повторным Register - тогда закрывать нечего.
func (b *Broadcaster) Unregister(sessionID string, ch chan api.ServerMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if current, ok := b.subscribers[sessionID]; ok && current == ch {
		close(current)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет кадр конкретной сессии. Медленный клиент
// теряет кадры, а не тормозит игровой цикл.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, смотрит ли кто-то на сессию
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
