package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// One owner, one long-lived session token; there is no refresh flow.
const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid email or password")

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	db     db.Querier
}

func NewService(secret string, db db.Querier) *Service {
	return &Service{
		secret: []byte(secret),
		db:     db,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, password_hash FROM users WHERE email = $1
	`, req.Email)

	var userID, hash string
	if err := row.Scan(&userID, &hash); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}
	return s.GenerateToken(userID)
}

func (s *Service) GenerateToken(userID string) (TokenResponse, error) {
	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

func (s *Service) ValidateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", errors.New("token invalid")
	}
	return claims.UserID, nil
}

// SeedOwner creates the dashboard's single account on first boot. It is a
// no-op when credentials are not configured or a user already exists.
func (s *Service) SeedOwner(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	username := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		username = email[:at]
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO users (id, email, username, password_hash)
		VALUES ($1,$2,$3,$4)
	`, uuid.NewString(), email, username, string(hash))
	return err
}
