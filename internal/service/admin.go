package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/hotel_menu/internal/hash"
	"github.com/Skotchmaster/hotel_menu/internal/models"
	"github.com/Skotchmaster/hotel_menu/internal/repo"
	"github.com/Skotchmaster/hotel_menu/internal/tokens"
)

// AdminService guards the single shared credential pair. Replace does not
// re-check the previous password; callers are expected to Verify first.
type AdminService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

type Verified struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

func (s *AdminService) Get(ctx context.Context) (*models.AdminCredential, error) {
	cred, err := s.Repo.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin credentials: %w", ErrNotFound)
		}
		return nil, err
	}
	return cred, nil
}

func (s *AdminService) Verify(ctx context.Context, username, password string) (*Verified, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	cred, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cred.Username != username || !hash.CheckPassword(cred.PasswordHash, password) {
		return nil, fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}

	v := &Verified{Username: cred.Username}
	if len(s.JWTSecret) == 0 {
		return v, nil
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	v.ExpiresAt = time.Now().Add(ttl).UTC()
	v.Token, err = tokens.SignAdmin(cred.Username, v.ExpiresAt, s.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("sign admin token: %w", err)
	}
	return v, nil
}

func (s *AdminService) Replace(ctx context.Context, username, password string) (*models.AdminCredential, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	h, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.Repo.UpsertAdmin(ctx, username, h)
}

// Seed stores the pair only when no credential exists yet. The password may
// be given as a bcrypt digest, in which case it is stored as is.
func (s *AdminService) Seed(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}
	_, err := s.Get(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if hash.IsHash(password) {
		if _, err := s.Repo.UpsertAdmin(ctx, username, password); err != nil {
			return false, err
		}
		return true, nil
	}
	if _, err := s.Replace(ctx, username, password); err != nil {
		return false, err
	}
	return true, nil
}
