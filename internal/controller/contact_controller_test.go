package controller

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mailtoResponse struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	URL       string `json:"url"`
	Truncated bool   `json:"truncated"`
}

func TestContactMailto(t *testing.T) {
	env := setupTestEnv(t)

	resp, body := env.do(t, newJSONRequest(http.MethodPost, "/api/contact/mailto", map[string]string{
		"subject": "Fiyat bilgisi",
		"message": "Merhaba",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "name alanı zorunludur", body.Error)

	resp, body = env.do(t, newJSONRequest(http.MethodPost, "/api/contact/mailto", map[string]string{
		"name":    "Ayşe Yılmaz",
		"email":   "gecersiz",
		"subject": "Fiyat bilgisi",
		"message": "Merhaba",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Geçersiz e-posta adresi", body.Error)

	resp, body = env.do(t, newJSONRequest(http.MethodPost, "/api/contact/mailto", map[string]string{
		"name":    "Ayşe Yılmaz",
		"email":   "ayse@ornek.com",
		"subject": "Fiyat bilgisi",
		"message": "Merhaba <script>alert(1)</script>ilan hakkında bilgi almak istiyorum",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)
	var msg mailtoResponse
	decodeData(t, body, &msg)
	assert.Equal(t, "info@emlakofisi.com", msg.To)
	assert.True(t, strings.HasPrefix(msg.URL, "mailto:info@emlakofisi.com?subject="))
	assert.NotContains(t, msg.URL, "+")
	assert.NotContains(t, msg.Body, "script")
	assert.Contains(t, msg.Body, "Ayşe Yılmaz")
}

func TestCareersMailto_UsesHREmail(t *testing.T) {
	env := setupTestEnv(t)

	resp, body := env.do(t, newJSONRequest(http.MethodPost, "/api/careers/mailto?lang=en", map[string]string{
		"firstName": "Mehmet",
		"lastName":  "Kaya",
		"email":     "mehmet@ornek.com",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The phone field is required", body.Error)

	resp, body = env.do(t, newJSONRequest(http.MethodPost, "/api/careers/mailto", map[string]string{
		"firstName": "Mehmet",
		"lastName":  "Kaya",
		"email":     "mehmet@ornek.com",
		"phone":     "+90 555 111 22 33",
		"position":  "Emlak Danışmanı",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)
	var msg mailtoResponse
	decodeData(t, body, &msg)
	assert.Equal(t, "ik@emlakofisi.com", msg.To)
	assert.Contains(t, msg.Body, "Emlak Danışmanı")
}
