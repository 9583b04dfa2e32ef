package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSiteConfig(t *testing.T) {
	env := setupTestEnv(t)

	// dosya yokken varsayılan yapılandırma döner
	resp, body := env.do(t, newJSONRequest(http.MethodGet, "/api/site-config", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cfg struct {
		Company struct {
			Name string `json:"name"`
		} `json:"company"`
		Contact struct {
			Email string `json:"email"`
		} `json:"contact"`
	}
	decodeData(t, body, &cfg)
	assert.Equal(t, "Emlak Ofisi", cfg.Company.Name)

	token := env.adminToken(t)
	resp, body = env.do(t, withToken(newJSONRequest(http.MethodPut, "/api/admin/configs/site.json", `{"contact":{"email":"satis@ornek.com"}}`), token))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)

	resp, body = env.do(t, newJSONRequest(http.MethodGet, "/api/site-config", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, body, &cfg)
	assert.Equal(t, "satis@ornek.com", cfg.Contact.Email)
	assert.Equal(t, "Emlak Ofisi", cfg.Company.Name)
}

func TestConfigManagement(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	raw := "{\n\"a\": 1,   \"b\": [true]\n}"
	resp, body := env.do(t, withToken(newJSONRequest(http.MethodPut, "/api/admin/configs/taslak.json", raw), token))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)

	written, err := os.ReadFile(filepath.Join(env.configDir, "taslak.json"))
	require.NoError(t, err)
	assert.Equal(t, raw, string(written))

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodPut, "/api/admin/configs/taslak.json", `{"a":`), token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body.Error, "Geçersiz JSON: ")

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodGet, "/api/admin/configs/..%2Fsecret.json", nil), token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodGet, "/api/admin/configs/taslak.json", nil), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Content string `json:"content"`
	}
	decodeData(t, body, &got)
	assert.Equal(t, raw, got.Content)

	resp, _ = env.do(t, withToken(newJSONRequest(http.MethodPut, "/api/admin/configs/site.json", `{}`), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodPost, "/api/admin/configs/taslak.json/rename", map[string]string{"name": "site.json"}), token))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Bu isimde bir dosya zaten var", body.Error)

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodPost, "/api/admin/configs/taslak.json/rename", map[string]string{"name": "yedek.json"}), token))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodGet, "/api/admin/configs", nil), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Files []struct {
			Name   string `json:"name"`
			Active bool   `json:"active"`
		} `json:"files"`
		Active string `json:"active"`
	}
	decodeData(t, body, &list)
	require.Len(t, list.Files, 2)
	assert.Equal(t, "site.json", list.Files[0].Name)
	assert.True(t, list.Files[0].Active)
	assert.Equal(t, "yedek.json", list.Files[1].Name)
	assert.Equal(t, "site.json", list.Active)

	resp, body = env.do(t, withToken(newJSONRequest(http.MethodDelete, "/api/admin/configs/site.json", nil), token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Aktif yapılandırma dosyası silinemez", body.Error)

	resp, _ = env.do(t, withToken(newJSONRequest(http.MethodDelete, "/api/admin/configs/yedek.json", nil), token))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = env.do(t, withToken(newJSONRequest(http.MethodGet, "/api/admin/configs/yedek.json", nil), token))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFormatConfig(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	resp, body := env.do(t, withToken(newJSONRequest(http.MethodPost, "/api/admin/configs/format", `{"a":{"b":1}}`), token))
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)
	var got struct {
		Content string `json:"content"`
	}
	decodeData(t, body, &got)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": 1\n  }\n}\n", got.Content)

	resp, _ = env.do(t, withToken(newJSONRequest(http.MethodPost, "/api/admin/configs/format", `{"a"`), token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadConfig(t *testing.T) {
	env := setupTestEnv(t)
	token := env.adminToken(t)

	upload := func(filename, content string) (*http.Response, envelope) {
		buf := new(bytes.Buffer)
		writer := multipart.NewWriter(buf)
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/configs/upload", buf)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		return env.do(t, withToken(req, token))
	}

	resp, body := upload("kampanya.json", `{"ok":true}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body.Error)
	assert.FileExists(t, filepath.Join(env.configDir, "kampanya.json"))

	resp, _ = upload("kampanya.txt", `{"ok":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = upload("bozuk.json", `{"ok":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
