package siteconfig

// LocalizedText tr/en çevirisi olan metin
type LocalizedText struct {
	TR string `json:"tr"`
	EN string `json:"en"`
}

// Get istenen dildeki metni döner, boşsa Türkçeye düşer
func (t LocalizedText) Get(locale string) string {
	if locale == "en" && t.EN != "" {
		return t.EN
	}
	return t.TR
}

type Company struct {
	Name        string        `json:"name"`
	LegalName   string        `json:"legalName"`
	Slogan      LocalizedText `json:"slogan"`
	Description LocalizedText `json:"description"`
	Logo        string        `json:"logo"`
	FoundedYear int           `json:"foundedYear"`
	LicenseNo   string        `json:"licenseNo"`
}

type Contact struct {
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Mobile   string        `json:"mobile"`
	WhatsApp string        `json:"whatsapp"`
	Address  LocalizedText `json:"address"`
	City     string        `json:"city"`
	MapURL   string        `json:"mapUrl"`
}

type Social struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`
}

type WorkingHours struct {
	Weekdays LocalizedText `json:"weekdays"`
	Saturday LocalizedText `json:"saturday"`
	Sunday   LocalizedText `json:"sunday"`
}

type HR struct {
	Email string `json:"email"`
}

type SEO struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Keywords    LocalizedText `json:"keywords"`
}

// SiteConfig sitenin çalışma zamanında yüklenen firma yapılandırması
type SiteConfig struct {
	Company       Company      `json:"company"`
	Contact       Contact      `json:"contact"`
	Social        Social       `json:"social"`
	WorkingHours  WorkingHours `json:"workingHours"`
	HR            HR           `json:"hr"`
	SEO           SEO          `json:"seo"`
	DefaultLocale string       `json:"defaultLocale"`
	Locales       []string     `json:"locales"`
}

// ContactEmail iletişim formu alıcısı
func (c *SiteConfig) ContactEmail() string {
	return c.Contact.Email
}

// HREmail iş başvurusu alıcısı; tanımlı değilse iletişim adresine düşer
func (c *SiteConfig) HREmail() string {
	if c.HR.Email != "" {
		return c.HR.Email
	}
	return c.Contact.Email
}

// Default yapılandırma dosyası okunamadığında kullanılan değerler
func Default() *SiteConfig {
	return &SiteConfig{
		Company: Company{
			Name:      "Emlak Ofisi",
			LegalName: "Emlak Ofisi Gayrimenkul Danışmanlık Ltd. Şti.",
			Slogan: LocalizedText{
				TR: "Hayalinizdeki eve giden yol",
				EN: "The way to your dream home",
			},
			Description: LocalizedText{
				TR: "Satılık ve kiralık konut, villa, arsa ve ticari gayrimenkullerde güvenilir danışmanlık.",
				EN: "Trusted consultancy for residential, villa, land and commercial properties for sale and rent.",
			},
			Logo:        "/images/logo.svg",
			FoundedYear: 2005,
		},
		Contact: Contact{
			Email:    "info@emlakofisi.com",
			Phone:    "+90 212 000 00 00",
			Mobile:   "+90 532 000 00 00",
			WhatsApp: "+905320000000",
			Address: LocalizedText{
				TR: "Bağdat Caddesi No:1, Kadıköy, İstanbul",
				EN: "1 Bagdat Street, Kadikoy, Istanbul",
			},
			City:   "İstanbul",
			MapURL: "https://maps.google.com/?q=Kadikoy+Istanbul",
		},
		Social: Social{
			Facebook:  "https://facebook.com/emlakofisi",
			Instagram: "https://instagram.com/emlakofisi",
			Twitter:   "https://twitter.com/emlakofisi",
			LinkedIn:  "https://linkedin.com/company/emlakofisi",
			YouTube:   "https://youtube.com/@emlakofisi",
		},
		WorkingHours: WorkingHours{
			Weekdays: LocalizedText{TR: "Pazartesi - Cuma: 09:00 - 18:00", EN: "Monday - Friday: 09:00 - 18:00"},
			Saturday: LocalizedText{TR: "Cumartesi: 10:00 - 16:00", EN: "Saturday: 10:00 - 16:00"},
			Sunday:   LocalizedText{TR: "Pazar: Kapalı", EN: "Sunday: Closed"},
		},
		HR: HR{
			Email: "ik@emlakofisi.com",
		},
		SEO: SEO{
			Title:       LocalizedText{TR: "Emlak Ofisi | Satılık ve Kiralık Gayrimenkul", EN: "Emlak Ofisi | Properties for Sale and Rent"},
			Description: LocalizedText{TR: "İstanbul'da satılık ve kiralık daire, villa ve arsa ilanları.", EN: "Apartments, villas and land for sale and rent in Istanbul."},
			Keywords:    LocalizedText{TR: "emlak, satılık daire, kiralık daire, villa", EN: "real estate, apartment for sale, apartment for rent, villa"},
		},
		DefaultLocale: "tr",
		Locales:       []string{"tr", "en"},
	}
}
