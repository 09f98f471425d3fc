package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wearable_display/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = time.Hour
	tokenIssuer     = "wearable-display"
	maxUsernameLen  = 64
)

// AuthConfig holds the HMAC key and token lifetime from the auth config section.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrOperatorUnknown = errors.New("operator not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService signs operators up and in, and verifies their bearer tokens.
type AuthService struct {
	operators repository.Operators
	cfg       AuthConfig
}

func NewAuthService(repo repository.Operators, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthService{operators: repo, cfg: cfg}
}

// SignUp hashes password and creates an operator. A taken username surfaces
// repository.ErrUsernameTaken.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return 0, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}
	return s.operators.Create(ctx, username, hash)
}

// Claims are the JWT claims of an operator session. Subject carries the username.
type Claims struct {
	jwt.RegisteredClaims
	OperatorID int `json:"operator_id"`
}

// GenerateToken validates credentials and returns a signed token.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return "", err
	}
	op, err := s.operators.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if op == nil {
		return "", ErrOperatorUnknown
	}
	if err := verifyPassword(op.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}
	return s.issueToken(op.ID, op.Username)
}

// ParseToken verifies an HS256 token from this service and returns the operator id.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SigningKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.OperatorID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.OperatorID, nil
}

func normalizeUsername(username string) (string, error) {
	u := strings.TrimSpace(username)
	if u == "" || len(u) > maxUsernameLen {
		return "", fmt.Errorf("%w: username must be 1..%d characters", ErrInvalidInput, maxUsernameLen)
	}
	return u, nil
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: password is empty", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) issueToken(operatorID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		OperatorID: operatorID,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
