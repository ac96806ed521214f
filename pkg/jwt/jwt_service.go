package jwt

import (
	"errors"
	"fmt"
	"time"

	"HealthyBites-Backend/domain"
	"HealthyBites-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(email string, role string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetClaimsByToken(token string) (string, string, error)
	}

	userClaims struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		expiry    time.Duration
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "HEALTHYBITES",
		expiry:    time.Hour,
	}
}

// NewJWTServiceWithSecret bypasses config loading, used by tests.
func NewJWTServiceWithSecret(secretKey string, expiry time.Duration) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "HEALTHYBITES",
		expiry:    expiry,
	}
}

func (j *jwtService) GenerateToken(email string, role string) (string, error) {
	claims := userClaims{
		role,
		jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.expiry)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &userClaims{}, j.parseToken)
}

// GetClaimsByToken verifies signature and expiry, then returns the subject
// (email) and role claims.
func (j *jwtService) GetClaimsByToken(token string) (string, string, error) {
	parsed, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*userClaims)
	if !ok {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
