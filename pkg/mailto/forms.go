package mailto

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrRequired     = errors.New("required field is missing")
	ErrInvalidEmail = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError eksik zorunlu alanı belirtir
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequired, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrRequired
}

// Alan başına izin verilen en fazla karakter
const (
	maxName        = 100
	maxEmail       = 254
	maxPhone       = 30
	maxSubject     = 200
	maxMessage     = 5000
	maxPosition    = 100
	maxExperience  = 2000
	maxEducation   = 1000
	maxCoverLetter = 5000
)

// ContactForm iletişim sayfası formu
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Clean alanları temizler ve zorunlu alanları kontrol eder
func (f ContactForm) Clean() (ContactForm, error) {
	clean := ContactForm{
		Name:    SanitizeLine(f.Name, maxName),
		Email:   SanitizeLine(f.Email, maxEmail),
		Phone:   SanitizeLine(f.Phone, maxPhone),
		Subject: SanitizeLine(f.Subject, maxSubject),
		Message: Sanitize(f.Message, maxMessage),
	}

	if err := required(map[string]string{
		"name":    clean.Name,
		"subject": clean.Subject,
		"message": clean.Message,
	}, "name", "subject", "message"); err != nil {
		return clean, err
	}
	if clean.Email != "" && !emailPattern.MatchString(clean.Email) {
		return clean, ErrInvalidEmail
	}
	return clean, nil
}

// JobApplicationForm kariyer sayfası başvuru formu
type JobApplicationForm struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Experience  string `json:"experience"`
	Education   string `json:"education"`
	CoverLetter string `json:"coverLetter"`
}

func (f JobApplicationForm) Clean() (JobApplicationForm, error) {
	clean := JobApplicationForm{
		FirstName:   SanitizeLine(f.FirstName, maxName),
		LastName:    SanitizeLine(f.LastName, maxName),
		Email:       SanitizeLine(f.Email, maxEmail),
		Phone:       SanitizeLine(f.Phone, maxPhone),
		Position:    SanitizeLine(f.Position, maxPosition),
		Experience:  Sanitize(f.Experience, maxExperience),
		Education:   Sanitize(f.Education, maxEducation),
		CoverLetter: Sanitize(f.CoverLetter, maxCoverLetter),
	}

	if err := required(map[string]string{
		"firstName": clean.FirstName,
		"lastName":  clean.LastName,
		"email":     clean.Email,
		"phone":     clean.Phone,
	}, "firstName", "lastName", "email", "phone"); err != nil {
		return clean, err
	}
	if !emailPattern.MatchString(clean.Email) {
		return clean, ErrInvalidEmail
	}
	return clean, nil
}

func required(values map[string]string, order ...string) error {
	for _, field := range order {
		if values[field] == "" {
			return &FieldError{Field: field}
		}
	}
	return nil
}
