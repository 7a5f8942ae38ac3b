// Package jwt verifies HS256 bearer tokens issued by the auth provider
package jwt

import (
	"errors"
	"time"

	"healthdash/internal/platform/config"
	perr "healthdash/internal/platform/errors"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Options configures the verifier
type Options struct {
	Secret   []byte
	Audience string        // checked when set
	Leeway   time.Duration // clock skew allowance
}

// FromConfig reads AUTH_JWT_SECRET (required), AUTH_JWT_AUDIENCE and AUTH_JWT_LEEWAY
func FromConfig(cfg config.Conf) Options {
	return Options{
		Secret:   []byte(cfg.MustString("AUTH_JWT_SECRET")),
		Audience: cfg.MayString("AUTH_JWT_AUDIENCE", ""),
		Leeway:   cfg.MayDuration("AUTH_JWT_LEEWAY", 30*time.Second),
	}
}

// Verifier checks signatures and extracts the subject
type Verifier struct {
	opt    Options
	parser *gjwt.Parser
}

// New builds a Verifier, an empty secret is a programmer error
func New(opt Options) *Verifier {
	if len(opt.Secret) == 0 {
		panic("jwt: empty secret")
	}
	popts := []gjwt.ParserOption{
		gjwt.WithValidMethods([]string{gjwt.SigningMethodHS256.Alg()}),
		gjwt.WithExpirationRequired(),
		gjwt.WithLeeway(opt.Leeway),
	}
	if opt.Audience != "" {
		popts = append(popts, gjwt.WithAudience(opt.Audience))
	}
	return &Verifier{opt: opt, parser: gjwt.NewParser(popts...)}
}

// ErrSubject is returned when the token verifies but carries no usable user id
var ErrSubject = errors.New("jwt: subject is not a uuid")

// Parse verifies raw and returns the canonical user id from sub.
// Its signature matches httpkit.TokenFunc
func (v *Verifier) Parse(raw string) (string, error) {
	claims := &gjwt.RegisteredClaims{}
	_, err := v.parser.ParseWithClaims(raw, claims, func(*gjwt.Token) (any, error) {
		return v.opt.Secret, nil
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid bearer token")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", perr.Wrap(ErrSubject, perr.ErrorCodeUnauthorized, "invalid bearer token")
	}
	return id.String(), nil
}

// Issue signs a token for userID valid for ttl, used by tests and local tooling
func (v *Verifier) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := gjwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  gjwt.NewNumericDate(now),
		ExpiresAt: gjwt.NewNumericDate(now.Add(ttl)),
	}
	if v.opt.Audience != "" {
		claims.Audience = gjwt.ClaimStrings{v.opt.Audience}
	}
	return gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString(v.opt.Secret)
}
