package mailto

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"text/template"
)

// MaxURLLength tarayıcı ve e-posta istemcilerinin güvenle açabildiği mailto uzunluğu
const MaxURLLength = 2000

const truncatedMarker = "\n\n[...]"

// Message oluşturulan e-posta içeriği
type Message struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	URL       string `json:"url"`
	Truncated bool   `json:"truncated"`
}

// Generator form verisinden yerelleştirilmiş mailto bağlantısı üretir
type Generator struct {
	templates *template.Template
}

func NewGenerator() (*Generator, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading mailto templates: %v", err)
	}
	return &Generator{templates: templates}, nil
}

type contactData struct {
	ContactForm
	SiteName string
}

type applicationData struct {
	JobApplicationForm
	SiteName string
}

// Contact iletişim formu için mailto üretir
func (g *Generator) Contact(form ContactForm, locale, to, siteName string) (*Message, error) {
	clean, err := form.Clean()
	if err != nil {
		return nil, err
	}
	return g.build("contact", locale, to, contactData{ContactForm: clean, SiteName: siteName})
}

// JobApplication iş başvurusu için mailto üretir
func (g *Generator) JobApplication(form JobApplicationForm, locale, to, siteName string) (*Message, error) {
	clean, err := form.Clean()
	if err != nil {
		return nil, err
	}
	return g.build("application", locale, to, applicationData{JobApplicationForm: clean, SiteName: siteName})
}

func (g *Generator) build(kind, locale, to string, data interface{}) (*Message, error) {
	if locale != "en" {
		locale = "tr"
	}

	subject, err := g.render(kind+"."+locale+".subject", data)
	if err != nil {
		return nil, err
	}
	body, err := g.render(kind+"."+locale+".body", data)
	if err != nil {
		return nil, err
	}

	subject = strings.Join(strings.Fields(subject), " ")
	body = strings.TrimSpace(body)

	link, finalBody, truncated := BuildURL(to, subject, body)
	return &Message{
		To:        to,
		Subject:   subject,
		Body:      finalBody,
		URL:       link,
		Truncated: truncated,
	}, nil
}

func (g *Generator) render(name string, data interface{}) (string, error) {
	var out bytes.Buffer
	if err := g.templates.ExecuteTemplate(&out, name, data); err != nil {
		return "", fmt.Errorf("template execution error: %v", err)
	}
	return out.String(), nil
}

// Encode mailto parametreleri için yüzde kodlaması; boşluklar %20 olur
func Encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildURL mailto bağlantısını oluşturur. Bağlantı MaxURLLength'i aşarsa
// gövde sona işaret eklenerek sığacak kadar kısaltılır.
func BuildURL(to, subject, body string) (string, string, bool) {
	prefix := "mailto:" + url.PathEscape(to) + "?subject=" + Encode(subject) + "&body="

	link := prefix + Encode(body)
	if len(link) <= MaxURLLength {
		return link, body, false
	}

	budget := MaxURLLength - len(prefix) - len(Encode(truncatedMarker))
	var kept strings.Builder
	used := 0
	for _, r := range body {
		n := len(Encode(string(r)))
		if used+n > budget {
			break
		}
		kept.WriteRune(r)
		used += n
	}

	body = strings.TrimRight(kept.String(), " \n\t") + truncatedMarker
	return prefix + Encode(body), body, true
}
