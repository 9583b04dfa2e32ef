package consent

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MaxLogEntries ziyaretçi başına tutulan en fazla olay sayısı
const MaxLogEntries = 1000

const (
	EventConsentUpdated = "consent_updated"
	EventDataExported   = "data_exported"
	EventDataDeleted    = "data_deleted"
)

// Event denetim kaydı
type Event struct {
	Type        string       `json:"type"`
	VisitorID   string       `json:"visitor_id"`
	Preferences *Preferences `json:"preferences,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// AuditLog yalnızca eklenebilen, boyutu sınırlı olay kaydı
type AuditLog interface {
	Append(ctx context.Context, visitorID string, event Event) error
	List(ctx context.Context, visitorID string) ([]Event, error)
	Clear(ctx context.Context, visitorID string) error
}

// MaxVisitorKeys bellekte kaydı tutulan en fazla ziyaretçi sayısı
const MaxVisitorKeys = 10000

// MemoryLog tek sunuculu kurulumlar ve testler için.
// Ziyaretçi kayıtları Redis'teki gibi son yazımdan MaxAge sonra düşer,
// ziyaretçi sayısı maxKeys'i aşarsa en eski dokunulan kayıt silinir.
type MemoryLog struct {
	mu        sync.Mutex
	entries   map[string][]Event
	touched   map[string]time.Time
	limit     int
	maxKeys   int
	ttl       time.Duration
	lastPrune time.Time
	now       func() time.Time
}

func NewMemoryLog(limit int) *MemoryLog {
	if limit <= 0 {
		limit = MaxLogEntries
	}
	return &MemoryLog{
		entries: make(map[string][]Event),
		touched: make(map[string]time.Time),
		limit:   limit,
		maxKeys: MaxVisitorKeys,
		ttl:     MaxAge,
		now:     time.Now,
	}
}

// WithClock testler için saat kaynağını değiştirir
func (l *MemoryLog) WithClock(now func() time.Time) *MemoryLog {
	l.now = now
	return l
}

func (l *MemoryLog) WithMaxKeys(n int) *MemoryLog {
	if n > 0 {
		l.maxKeys = n
	}
	return l
}

func (l *MemoryLog) Append(_ context.Context, visitorID string, event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) >= time.Hour {
		l.pruneExpired(now)
	}

	events := append(l.entries[visitorID], event)
	if len(events) > l.limit {
		events = append([]Event(nil), events[len(events)-l.limit:]...)
	}
	l.entries[visitorID] = events
	l.touched[visitorID] = now

	for len(l.entries) > l.maxKeys {
		l.evictOldest()
	}
	return nil
}

func (l *MemoryLog) List(_ context.Context, visitorID string) ([]Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.touched[visitorID]; ok && l.now().Sub(t) > l.ttl {
		l.remove(visitorID)
	}

	events := make([]Event, len(l.entries[visitorID]))
	copy(events, l.entries[visitorID])
	return events, nil
}

func (l *MemoryLog) Clear(_ context.Context, visitorID string) error {
	l.mu.Lock()
	l.remove(visitorID)
	l.mu.Unlock()
	return nil
}

func (l *MemoryLog) pruneExpired(now time.Time) int64 {
	var purged int64
	for id, t := range l.touched {
		if now.Sub(t) > l.ttl {
			l.remove(id)
			purged++
		}
	}
	l.lastPrune = now
	return purged
}

func (l *MemoryLog) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, t := range l.touched {
		if oldestID == "" || t.Before(oldest) {
			oldestID, oldest = id, t
		}
	}
	if oldestID == "" {
		return
	}
	l.remove(oldestID)
}

func (l *MemoryLog) remove(visitorID string) {
	delete(l.entries, visitorID)
	delete(l.touched, visitorID)
}

// RedisLog olayları ziyaretçi başına bir Redis listesinde tutar
type RedisLog struct {
	client *redis.Client
	prefix string
	limit  int
	ttl    time.Duration
}

func NewRedisLog(client *redis.Client, limit int) *RedisLog {
	if limit <= 0 {
		limit = MaxLogEntries
	}
	return &RedisLog{
		client: client,
		prefix: "consent:log:",
		limit:  limit,
		ttl:    MaxAge,
	}
}

func (l *RedisLog) key(visitorID string) string {
	return l.prefix + visitorID
}

// Append RPUSH + LTRIM ile listeyi son limit kadar olayda tutar
func (l *RedisLog) Append(ctx context.Context, visitorID string, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := l.key(visitorID)
	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.LTrim(ctx, key, int64(-l.limit), -1)
		pipe.Expire(ctx, key, l.ttl)
		return nil
	})
	return err
}

func (l *RedisLog) List(ctx context.Context, visitorID string) ([]Event, error) {
	values, err := l.client.LRange(ctx, l.key(visitorID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(values))
	for _, v := range values {
		var e Event
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func (l *RedisLog) Clear(ctx context.Context, visitorID string) error {
	return l.client.Del(ctx, l.key(visitorID)).Err()
}
