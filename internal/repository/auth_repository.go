package repository

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"emlakweb_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultSessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

type AuthRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewAuthRepository(db *gorm.DB, ttl time.Duration) *AuthRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthRepository{
		db:  db,
		ttl: ttl,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *AuthRepository) WithClock(now func() time.Time) *AuthRepository {
	r.now = now
	return r
}

// Login kullanıcıyı doğrular ve yeni oturum açar.
// Düz metin saklanmış eski şifreler ilk başarılı girişte bcrypt'e çevrilir.
func (r *AuthRepository) Login(ctx context.Context, username, password string) (*model.Session, error) {
	db := r.db.WithContext(ctx)

	var user model.AdminUser
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.HasHashedPassword() {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
	} else {
		if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
			return nil, ErrInvalidCredentials
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
			return nil, err
		}
		log.Printf("Migrated legacy plain-text password for admin %s", user.Username)
	}

	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := r.now()
	session := model.Session{
		Token:     token,
		Username:  user.Username,
		ExpiresAt: now.Add(r.ttl),
		CreatedAt: now,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&user).Update("last_login_at", now).Error; err != nil {
		log.Printf("Could not update last login for %s: %v", user.Username, err)
	}

	return &session, nil
}

// VerifySession oturumun varlığını ve süresini kontrol eder; süresi dolmuş kayıt silinir
func (r *AuthRepository) VerifySession(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	db := r.db.WithContext(ctx)

	var session model.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if session.IsExpired(r.now()) {
		if err := db.Delete(&model.Session{}, "token = ?", token).Error; err != nil {
			log.Printf("Could not delete expired session: %v", err)
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (r *AuthRepository) Logout(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&model.Session{}, "token = ?", token).Error
}

// PurgeExpired süresi dolmuş tüm oturumları siler
func (r *AuthRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

// EnsureAdmin hiç admin yoksa verilen bilgilerle bir tane oluşturur
func (r *AuthRepository) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := model.AdminUser{Username: username, Password: string(hashed)}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
