package controller

import (
	"encoding/json"
	"fmt"
	"time"

	"emlakweb_backend/internal/middleware"
	"emlakweb_backend/pkg/consent"

	"github.com/gofiber/fiber/v2"
)

var consentManager *consent.Manager

func InitConsentController(manager *consent.Manager) {
	consentManager = manager
}

type ConsentInput struct {
	Functional     bool `json:"functional"`
	Analytics      bool `json:"analytics"`
	Marketing      bool `json:"marketing"`
	PrivacyPolicy  bool `json:"privacyPolicy"`
	TermsOfService bool `json:"termsOfService"`
	AcceptAll      bool `json:"acceptAll"`
}

func writeCookies(c *fiber.Ctx, cookies []consent.Cookie) {
	for _, ck := range cookies {
		c.Cookie(&fiber.Cookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Path:     "/",
			Expires:  ck.Expires,
			MaxAge:   ck.MaxAge,
			Secure:   c.Protocol() == "https",
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

func requestCookies(c *fiber.Ctx) map[string]string {
	cookies := map[string]string{}
	c.Request().Header.VisitAllCookie(func(key, value []byte) {
		cookies[string(key)] = string(value)
	})
	return cookies
}

// GetConsent mevcut tercihleri ve banner gösterilip gösterilmeyeceğini döner
func GetConsent(c *fiber.Ctx) error {
	prefs, ok := consentManager.Current(c.Cookies(consent.CookieName))
	return success(c, fiber.StatusOK, fiber.Map{
		"preferences": prefs,
		"show_banner": !ok,
	})
}

// SaveConsent tercihleri kaydeder ve çerezleri yazar
func SaveConsent(c *fiber.Ctx) error {
	input := new(ConsentInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, fiber.StatusBadRequest, "error.bad_request")
	}

	prefs := consent.Preferences{
		Functional:     input.Functional,
		Analytics:      input.Analytics,
		Marketing:      input.Marketing,
		PrivacyPolicy:  input.PrivacyPolicy,
		TermsOfService: input.TermsOfService,
	}
	if input.AcceptAll {
		prefs = consent.AcceptAll(time.Now())
	}

	saved, cookies, err := consentManager.Update(c.UserContext(), middleware.GetVisitorID(c), prefs)
	if err != nil {
		return internalError(c, "Could not save consent", err)
	}
	writeCookies(c, cookies)

	return success(c, fiber.StatusOK, fiber.Map{
		"preferences": saved,
		"show_banner": false,
		"message":     message(c, "consent.saved"),
	})
}

// ExportConsentData ziyaretçinin verilerini json dosyası olarak indirir
func ExportConsentData(c *fiber.Ctx) error {
	export, err := consentManager.Export(c.UserContext(), middleware.GetVisitorID(c), requestCookies(c))
	if err != nil {
		return internalError(c, "Could not export consent data", err)
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return internalError(c, "Could not encode consent export", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Attachment(fmt.Sprintf("veri-disa-aktarim-%s.json", time.Now().Format("2006-01-02")))
	return c.Send(data)
}

// DeleteConsentData tüm çerezleri ve olay kaydını siler
func DeleteConsentData(c *fiber.Ctx) error {
	names := make([]string, 0)
	for name := range requestCookies(c) {
		names = append(names, name)
	}

	cookies, err := consentManager.DeleteAll(c.UserContext(), middleware.GetVisitorID(c), names)
	if err != nil {
		return internalError(c, "Could not delete consent data", err)
	}
	writeCookies(c, cookies)

	return success(c, fiber.StatusOK, fiber.Map{
		"message":     message(c, "consent.deleted"),
		"show_banner": true,
	})
}
