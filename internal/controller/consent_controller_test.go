package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type consentResponse struct {
	Preferences struct {
		Necessary bool  `json:"necessary"`
		Analytics bool  `json:"analytics"`
		Marketing bool  `json:"marketing"`
		Timestamp int64 `json:"timestamp"`
	} `json:"preferences"`
	ShowBanner bool `json:"show_banner"`
}

func TestConsentFlow(t *testing.T) {
	env := setupTestEnv(t)

	resp, body := env.do(t, newJSONRequest(http.MethodGet, "/api/consent", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got consentResponse
	decodeData(t, body, &got)
	assert.True(t, got.ShowBanner)
	assert.True(t, got.Preferences.Necessary)
	assert.False(t, got.Preferences.Analytics)

	resp, body = env.do(t, newJSONRequest(http.MethodPost, "/api/consent", map[string]bool{"analytics": true}))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)
	decodeData(t, body, &got)
	assert.False(t, got.ShowBanner)
	assert.True(t, got.Preferences.Analytics)
	assert.NotZero(t, got.Preferences.Timestamp)

	mainCookie := findCookie(resp, "cookie_consent")
	require.NotNil(t, mainCookie)
	assert.False(t, mainCookie.HttpOnly)
	assert.Equal(t, "/", mainCookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, mainCookie.SameSite)
	assert.Equal(t, 365*24*60*60, mainCookie.MaxAge)

	analytics := findCookie(resp, "consent_analytics")
	require.NotNil(t, analytics)
	assert.Equal(t, "true", analytics.Value)
	marketing := findCookie(resp, "consent_marketing")
	require.NotNil(t, marketing)
	assert.Equal(t, "false", marketing.Value)

	req := newJSONRequest(http.MethodGet, "/api/consent", nil)
	req.AddCookie(&http.Cookie{Name: mainCookie.Name, Value: mainCookie.Value})
	resp, body = env.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, body, &got)
	assert.False(t, got.ShowBanner)
	assert.True(t, got.Preferences.Analytics)
}

func TestConsent_AcceptAll(t *testing.T) {
	env := setupTestEnv(t)

	resp, body := env.do(t, newJSONRequest(http.MethodPost, "/api/consent", map[string]bool{"acceptAll": true}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got consentResponse
	decodeData(t, body, &got)
	assert.True(t, got.Preferences.Analytics)
	assert.True(t, got.Preferences.Marketing)
}

func TestConsent_ExportAndDelete(t *testing.T) {
	env := setupTestEnv(t)

	resp, _ := env.do(t, newJSONRequest(http.MethodPost, "/api/consent", map[string]bool{"functional": true}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	visitor := findCookie(resp, "vid")
	consentCookie := findCookie(resp, "cookie_consent")
	require.NotNil(t, visitor)
	require.NotNil(t, consentCookie)

	withCookies := func(req *http.Request) *http.Request {
		req.AddCookie(&http.Cookie{Name: visitor.Name, Value: visitor.Value})
		req.AddCookie(&http.Cookie{Name: consentCookie.Name, Value: consentCookie.Value})
		req.AddCookie(&http.Cookie{Name: "tema", Value: "koyu"})
		return req
	}

	resp, _ = env.do(t, withCookies(newJSONRequest(http.MethodGet, "/api/consent/export", nil)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".json")

	resp, body := env.do(t, withCookies(newJSONRequest(http.MethodDelete, "/api/consent/data", nil)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var data struct {
		Message    string `json:"message"`
		ShowBanner bool   `json:"show_banner"`
	}
	decodeData(t, body, &data)
	assert.Equal(t, "Tüm verileriniz silindi", data.Message)
	assert.True(t, data.ShowBanner)

	for _, name := range []string{"tema", "cookie_consent", "consent_functional"} {
		c := findCookie(resp, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value, name)
		assert.True(t, c.Expires.Before(time.Now()), name)
	}
}

func TestRecordPageView_RequiresAnalyticsConsent(t *testing.T) {
	env := setupTestEnv(t)

	resp, body := env.do(t, newJSONRequest(http.MethodPost, "/api/pageviews", map[string]string{"path": "/ilanlar"}))
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	var got struct {
		Recorded bool   `json:"recorded"`
		Reason   string `json:"reason"`
	}
	decodeData(t, body, &got)
	assert.False(t, got.Recorded)
	assert.Equal(t, "Analitik çerezlere izin verilmedi", got.Reason)

	resp, _ = env.do(t, newJSONRequest(http.MethodPost, "/api/consent", map[string]bool{"analytics": true}))
	consentCookie := findCookie(resp, "cookie_consent")
	require.NotNil(t, consentCookie)

	req := newJSONRequest(http.MethodPost, "/api/pageviews", map[string]string{"path": "/ilanlar?sayfa=2"})
	req.AddCookie(&http.Cookie{Name: consentCookie.Name, Value: consentCookie.Value})
	resp, body = env.do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)
	decodeData(t, body, &got)
	assert.True(t, got.Recorded)

	token := env.adminToken(t)
	resp, body = env.do(t, withToken(newJSONRequest(http.MethodGet, "/api/admin/stats", nil), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		DailyPageViews []struct {
			Views int64 `json:"views"`
		} `json:"daily_page_views"`
	}
	decodeData(t, body, &stats)
	require.Len(t, stats.DailyPageViews, 7)
	assert.Equal(t, int64(1), stats.DailyPageViews[6].Views)
}
