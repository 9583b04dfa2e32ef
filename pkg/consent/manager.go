package consent

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

// Listener tercih değişikliklerinde çağrılır
type Listener func(visitorID string, prefs Preferences)

// Export ziyaretçinin talep ettiği veri dökümü
type Export struct {
	VisitorID   string            `json:"visitor_id"`
	ExportedAt  time.Time         `json:"exported_at"`
	Preferences Preferences       `json:"preferences"`
	HasConsent  bool              `json:"has_consent"`
	Cookies     map[string]string `json:"cookies"`
	Events      []Event           `json:"events"`
}

// Manager onay tercihlerini, olay kaydını ve aboneleri yönetir
type Manager struct {
	log AuditLog
	now func() time.Time

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

func NewManager(auditLog AuditLog) *Manager {
	if auditLog == nil {
		auditLog = NewMemoryLog(MaxLogEntries)
	}
	return &Manager{
		log:       auditLog,
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
}

func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Subscribe dinleyici ekler, dönen fonksiyon aboneliği kaldırır
func (m *Manager) Subscribe(fn Listener) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Manager) emit(visitorID string, prefs Preferences) {
	m.mu.RLock()
	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, m.listeners[id])
	}
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(visitorID, prefs)
	}
}

// Current çerez değerinden geçerli tercihleri çıkarır.
// İkinci değer false ise banner tekrar gösterilmelidir.
func (m *Manager) Current(cookieValue string) (Preferences, bool) {
	prefs, err := Decode(cookieValue, m.now())
	if err != nil {
		return DefaultPreferences(), false
	}
	return *prefs, true
}

// Update yeni tercihleri zaman damgasıyla kaydeder ve yazılacak çerezleri döner
func (m *Manager) Update(ctx context.Context, visitorID string, prefs Preferences) (Preferences, []Cookie, error) {
	now := m.now()
	prefs.Necessary = true
	prefs.Timestamp = now.UnixMilli()

	cookies, err := PreferenceCookies(prefs, now)
	if err != nil {
		return prefs, nil, err
	}

	saved := prefs
	m.record(ctx, visitorID, Event{Type: EventConsentUpdated, Preferences: &saved})
	m.emit(visitorID, prefs)
	return prefs, cookies, nil
}

// Export ziyaretçinin çerezlerini, tercihlerini ve olaylarını toplar
func (m *Manager) Export(ctx context.Context, visitorID string, cookies map[string]string) (*Export, error) {
	prefs, hasConsent := m.Current(cookies[CookieName])

	m.record(ctx, visitorID, Event{Type: EventDataExported})

	events, err := m.log.List(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if cookies == nil {
		cookies = map[string]string{}
	}

	return &Export{
		VisitorID:   visitorID,
		ExportedAt:  m.now(),
		Preferences: prefs,
		HasConsent:  hasConsent,
		Cookies:     cookies,
		Events:      events,
	}, nil
}

// DeleteAll tüm çerezleri silinecek şekilde döner, olay kaydını temizler
// ve temizlik sonrası tek bir data_deleted olayı bırakır
func (m *Manager) DeleteAll(ctx context.Context, visitorID string, cookieNames []string) ([]Cookie, error) {
	if err := m.log.Clear(ctx, visitorID); err != nil {
		return nil, err
	}
	m.record(ctx, visitorID, Event{Type: EventDataDeleted})
	m.emit(visitorID, DefaultPreferences())

	names := append([]string(nil), cookieNames...)
	for _, name := range []string{CookieName, FunctionalCookie, AnalyticsCookie, MarketingCookie} {
		if !contains(names, name) {
			names = append(names, name)
		}
	}
	return ExpiredCookies(names), nil
}

func (m *Manager) Events(ctx context.Context, visitorID string) ([]Event, error) {
	return m.log.List(ctx, visitorID)
}

// record olay kaydı hatasını loglar, isteği düşürmez
func (m *Manager) record(ctx context.Context, visitorID string, event Event) {
	event.VisitorID = visitorID
	event.Timestamp = m.now().UTC()
	if err := m.log.Append(ctx, visitorID, event); err != nil {
		log.Printf("Could not append consent event for %s: %v", visitorID, err)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
