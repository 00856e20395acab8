package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Decode failure reasons
var (
	ErrTokenMalformed   = errors.New("token is malformed")
	ErrSignatureInvalid = errors.New("token signature does not verify")
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenNotYetValid = errors.New("token is not valid yet")
	ErrTokenInvalid     = errors.New("token is invalid")
)

const issuer = "taskeasy"

// Claims represents the JWT claims carried by an access token
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Encode produces a signed compact token for the given subject.
// Issued-at and not-before are set to now, expiry to now + ttl.
func Encode(subject string, roles []string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Decode parses and verifies a token: signature, structure, expiry and
// not-before are all checked. Any alteration of the signed segments fails
// deterministically.
func Decode(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc(secret))
	if err != nil {
		return nil, mapError(err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// DecodeAllowExpired verifies the signature and structure but tolerates an
// expired token. Used only by the refresh path, which applies its own
// grace-window check on the expiry claim.
func DecodeAllowExpired(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, err := parser.ParseWithClaims(tokenString, claims, keyFunc(secret))
	if err != nil {
		return nil, mapError(err)
	}
	return claims, nil
}

func keyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrTokenNotYetValid
	default:
		return ErrTokenInvalid
	}
}
