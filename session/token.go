package session

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims is what the client can read out of a JWT access token without
// contacting the server.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken parses the access token's claims without verifying the
// signature. Tokens that are not JWTs yield an error; callers fall back to
// the session record's own expiry.
func InspectToken(token string) (TokenClaims, error) {
	if strings.Count(token, ".") != 2 {
		return TokenClaims{}, errors.New("access token is not a JWT")
	}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, err
	}
	out := TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	switch exp := claims["exp"].(type) {
	case float64:
		out.ExpiresAt = time.Unix(int64(exp), 0)
	case json.Number:
		if n, err := exp.Int64(); err == nil {
			out.ExpiresAt = time.Unix(n, 0)
		}
	}
	return out, nil
}

// Verifier checks an access token's signature and standard claims against
// the server's published JWKS. It is optional: most deployments treat the
// token as opaque and let the server reject bad ones.
type Verifier struct {
	jwks     *keyfunc.JWKS
	audience string
	issuer   string
}

// NewVerifier fetches the JWKS at jwksURL. audience and issuer are checked
// only when non-empty.
func NewVerifier(jwksURL, audience, issuer string) (*Verifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{})
	if err != nil {
		return nil, err
	}
	return &Verifier{jwks: jwks, audience: audience, issuer: issuer}, nil
}

// Verify validates the token and returns its subject.
func (v *Verifier) Verify(token string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"RS256"}), jwt.WithoutClaimsValidation())
	parsed, err := parser.Parse(token, v.jwks.Keyfunc)
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	now := time.Now().Unix()
	if !claims.VerifyExpiresAt(now, true) {
		return "", errors.New("token expired")
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, false) {
		return "", errors.New("invalid audience")
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, false) {
		return "", errors.New("invalid issuer")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("missing sub")
	}
	return sub, nil
}
