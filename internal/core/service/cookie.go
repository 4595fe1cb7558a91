package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The session cookie value is an HS256-signed token carrying only the opaque
// session id. The server-side session store stays authoritative; the
// signature just stops clients from minting ids.

func signSessionCookie(secret, sid string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func parseSessionCookie(secret, value string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("cookie missing session id")
	}
	return sid, nil
}
