// Package auth contains the token codec shared by the HTTP middleware and the
// external session issuer. Credential checks and session issuance live outside
// this service; here we only verify that a presented token carries a valid
// signature and has not expired.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Roles recognized by the storefront.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// ErrInvalidToken is returned for malformed, tampered, or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the authenticated identity extracted from a token.
type Claims struct {
	SubjectID string `json:"sub"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

// Codec signs and verifies tokens with an HMAC-SHA256 secret shared with the
// session issuer.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec for the given shared secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign serializes claims into a signed token. Used by tests and by external
// issuers that share the secret.
func (c *Codec) Sign(claims Claims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + c.signature(body), nil
}

// Verify checks the token signature and expiry and returns the embedded claims.
func (c *Codec) Verify(token string) (Claims, error) {
	body, sig, found := strings.Cut(token, ".")
	if !found {
		return Claims{}, ErrInvalidToken
	}

	if !hmac.Equal([]byte(c.signature(body)), []byte(sig)) {
		return Claims{}, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}

	if claims.SubjectID == "" || (claims.Role != RoleCustomer && claims.Role != RoleAdmin) {
		return Claims{}, ErrInvalidToken
	}

	if claims.ExpiresAt != 0 && time.Now().Unix() > claims.ExpiresAt {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

func (c *Codec) signature(body string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
