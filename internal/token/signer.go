package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"jwtgen/internal/apperr"
	"jwtgen/internal/claims"
)

// method is the only signing algorithm used.
var method jwt.SigningMethod = jwt.SigningMethodHS256

// Sign encodes payload as the claim set of an HS256 JWT keyed by secret.
// The claims are taken as they are; nothing like iat or exp is added.
func Sign(payload claims.Mapping, secret string) (string, error) {
	if secret == "" {
		log.Warn().Msg("Signing with an empty secret, the token can be forged by anyone")
	}

	mapClaims := jwt.MapClaims(payload.NativeMap())

	token := jwt.NewWithClaims(method, mapClaims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", apperr.Sign(err, "signing token with %s", method.Alg())
	}

	log.Debug().Str("alg", method.Alg()).Int("claims", len(payload)).Msg("Signed token")

	return signed, nil
}
