package service

import (
	"errors"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const tokenAudience = "wexel-ledger-api"

var errWalletFamily = errors.New("wallet family does not match subject")

// walletClaims binds the token subject (the caller wallet) to its chain
// family so a token minted for one family never authorizes the other.
type walletClaims struct {
	Family domain.WalletFamily `json:"wfam"`
	jwt.RegisteredClaims
}

// JWTTokenService implements ports.TokenService with HS256 tokens whose
// subject is the caller's wallet address.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

// Generate mints a token for wallet and returns it with its expiry.
func (s *JWTTokenService) Generate(wallet string) (string, time.Time, error) {
	if wallet == "" {
		return "", time.Time{}, errors.New("wallet is required")
	}
	issued := s.now()
	expiresAt := issued.Add(s.expiry)

	claims := walletClaims{
		Family: domain.FamilyOf(wallet),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   wallet,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate verifies signature, issuer, audience and expiry, and returns the
// caller wallet.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims walletClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("missing subject claim")
	}
	if claims.Family != domain.FamilyOf(claims.Subject) {
		return nil, errWalletFamily
	}
	return &ports.TokenClaims{Wallet: claims.Subject}, nil
}
