package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rpupo63/blog-cms-backend/errs"
	"golang.org/x/crypto/bcrypt"
)

// CredentialService hashes passwords and mints/validates HS256 bearer tokens.
// Issued tokens cannot be revoked; they stay valid until their exp claim.
type CredentialService struct {
	secret   []byte
	tokenTTL time.Duration
	cost     int
	now      func() time.Time
}

type CredentialOption func(*CredentialService)

// WithCredentialClock overrides the time source used for iat/exp.
func WithCredentialClock(now func() time.Time) CredentialOption {
	return func(s *CredentialService) {
		s.now = now
	}
}

func NewCredentialService(secret string, tokenTTL time.Duration, bcryptCost int, opts ...CredentialOption) *CredentialService {
	s := &CredentialService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		cost:     bcryptCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HashPassword returns a salted bcrypt hash; hashing the same password twice yields different hashes.
func (s *CredentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *CredentialService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a token for subject that expires tokenTTL from now.
func (s *CredentialService) IssueToken(subject string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature, algorithm and expiry and returns the token's subject.
func (s *CredentialService) ValidateToken(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", errs.NewInvalidTokenError(err)
	}
	if claims.Subject == "" {
		return "", errs.NewMissingSubjectError()
	}
	return claims.Subject, nil
}
