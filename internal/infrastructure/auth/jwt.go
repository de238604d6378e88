package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helioscale/internal/shared/authorization"
)

// Claims is the payload embedded in every issued token: identity plus
// the role flags as they stood at login time. Flags can go stale; the
// role gate re-checks the store on the denial path.
type Claims struct {
	AccountID  uint   `json:"account_id"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	IsEmployee bool   `json:"is_employee"`
	jwt.RegisteredClaims
}

// RoleFlags returns the role flags carried by the claims.
func (c *Claims) RoleFlags() authorization.RoleFlags {
	return authorization.RoleFlags{
		IsAdmin:    c.IsAdmin,
		IsEmployee: c.IsEmployee,
	}
}

type JWTService struct {
	secret     []byte
	expiryDays int
}

func NewJWTService(secret string, expiryDays int) *JWTService {
	if expiryDays <= 0 {
		expiryDays = 7
	}
	return &JWTService{
		secret:     []byte(secret),
		expiryDays: expiryDays,
	}
}

// Generate signs a token embedding the account identity and role flags.
func (s *JWTService) Generate(accountID uint, email string, flags authorization.RoleFlags) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.expiryDays) * 24 * time.Hour)

	claims := &Claims{
		AccountID:  accountID,
		Email:      email,
		IsAdmin:    flags.IsAdmin,
		IsEmployee: flags.IsEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates the signature and expiry and returns the decoded claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpiresIn returns the token lifetime in seconds.
func (s *JWTService) ExpiresIn() int64 {
	return int64(s.expiryDays) * 24 * 3600
}
