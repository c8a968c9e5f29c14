package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const AdminRole = "admin"

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func SignAdmin(username string, exp time.Time, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty signing secret")
	}
	now := time.Now()
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func AdminClaimsFromToken(tokenStr string, secret []byte) (*AdminClaims, error) {
	var claims AdminClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Role != AdminRole {
		return nil, errors.New("not an admin token")
	}
	return &claims, nil
}
