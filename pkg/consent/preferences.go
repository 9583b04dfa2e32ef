package consent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const (
	CookieName       = "cookie_consent"
	FunctionalCookie = "consent_functional"
	AnalyticsCookie  = "consent_analytics"
	MarketingCookie  = "consent_marketing"

	// MaxAge onay çerezinin geçerlilik süresi
	MaxAge = 365 * 24 * time.Hour
)

var (
	ErrNoConsent = errors.New("no consent cookie")
	ErrMalformed = errors.New("malformed consent cookie")
	ErrExpired   = errors.New("consent expired")
)

// Preferences ziyaretçinin çerez kategorisi tercihleri.
// Timestamp milisaniye cinsinden unix zamanıdır.
type Preferences struct {
	Necessary      bool  `json:"necessary"`
	Functional     bool  `json:"functional"`
	Analytics      bool  `json:"analytics"`
	Marketing      bool  `json:"marketing"`
	PrivacyPolicy  bool  `json:"privacyPolicy"`
	TermsOfService bool  `json:"termsOfService"`
	Timestamp      int64 `json:"timestamp"`
}

// DefaultPreferences onay verilmemiş ziyaretçi için geçerli tercihler
func DefaultPreferences() Preferences {
	return Preferences{Necessary: true}
}

// AcceptAll tüm kategorilere izin verir
func AcceptAll(now time.Time) Preferences {
	return Preferences{
		Necessary:      true,
		Functional:     true,
		Analytics:      true,
		Marketing:      true,
		PrivacyPolicy:  true,
		TermsOfService: true,
		Timestamp:      now.UnixMilli(),
	}
}

func (p Preferences) GivenAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// IsExpired tercih 365 günden eskiyse true döner
func (p Preferences) IsExpired(now time.Time) bool {
	return p.Timestamp <= 0 || now.Sub(p.GivenAt()) > MaxAge
}

// Encode tercihleri çereze yazılacak URL-encoded json'a çevirir
func Encode(p Preferences) (string, error) {
	p.Necessary = true
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(data)), nil
}

// Decode çerez değerini çözer. Süresi dolmuş veya bozuk çerez onay yok sayılır.
func Decode(value string, now time.Time) (*Preferences, error) {
	if value == "" {
		return nil, ErrNoConsent
	}

	raw, err := url.QueryUnescape(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.IsExpired(now) {
		return nil, ErrExpired
	}

	p.Necessary = true
	return &p, nil
}

// Cookie framework bağımsız çerez tanımı
type Cookie struct {
	Name    string
	Value   string
	Expires time.Time
	MaxAge  int
}

// PreferenceCookies ana onay çerezini ve kategori çerezlerini üretir
func PreferenceCookies(p Preferences, now time.Time) ([]Cookie, error) {
	value, err := Encode(p)
	if err != nil {
		return nil, err
	}

	expires := now.Add(MaxAge)
	maxAge := int(MaxAge / time.Second)

	cookies := []Cookie{{Name: CookieName, Value: value, Expires: expires, MaxAge: maxAge}}
	for name, enabled := range map[string]bool{
		FunctionalCookie: p.Functional,
		AnalyticsCookie:  p.Analytics,
		MarketingCookie:  p.Marketing,
	} {
		cookies = append(cookies, Cookie{
			Name:    name,
			Value:   strconv.FormatBool(enabled),
			Expires: expires,
			MaxAge:  maxAge,
		})
	}
	return cookies, nil
}

// ExpiredCookies verilen çerezleri silmek için geçmiş tarihli kopyalar üretir
func ExpiredCookies(names []string) []Cookie {
	cookies := make([]Cookie, 0, len(names))
	for _, name := range names {
		cookies = append(cookies, Cookie{
			Name:    name,
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		})
	}
	return cookies
}
