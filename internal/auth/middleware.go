package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "bearer"
)

// Middleware parses an HS256 bearer token and puts the resulting Identity
// into the request context. Requests without an Authorization header pass
// through anonymously; the per-route gates decide whether that is acceptable.
// A present-but-invalid token is rejected here with 401.
func Middleware(signingKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(authorizationHeader)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := parseBearer(header, signingKey)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func parseBearer(header string, signingKey []byte) (Identity, error) {
	fields := strings.Fields(header)
	if len(fields) != 2 || strings.ToLower(fields[0]) != bearerPrefix {
		return Identity{}, fmt.Errorf("invalid authorization header format")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(fields[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("invalid access token: %w", err)
	}

	return identityFromClaims(claims)
}

func identityFromClaims(claims jwt.MapClaims) (Identity, error) {
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return Identity{}, fmt.Errorf("token missing user_id claim")
	}

	identity := Identity{UserID: int(rawID)}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, raw := range rawRoles {
			if role, ok := raw.(string); ok {
				identity.Roles = append(identity.Roles, role)
			}
		}
	}

	return identity, nil
}

// NewToken mints a signed token for the given identity. Issuance belongs to
// the auth service; this exists for local development and tests.
func NewToken(signingKey []byte, identity Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id": identity.UserID,
		"roles":   identity.Roles,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}
