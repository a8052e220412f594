// Package hms generates access tokens for an HMS style real time video
// provider. Room tokens let a single participant join a single room;
// management tokens authorize server side API calls.
package hms

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/venahealth/backend/libs/clock"
	"github.com/venahealth/backend/libs/errors"
)

// Role is the capability set a room token grants a participant.
type Role string

const (
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

// Valid returns true iff the value is a supported role.
func (r Role) Valid() bool {
	switch r {
	case RoleHost, RoleGuest:
		return true
	}
	return false
}

const (
	tokenTypeApp        = "app"
	tokenTypeManagement = "management"
	tokenVersion        = 2

	defaultTTL = 24 * time.Hour
)

// TokenGenerator mints signed provider tokens for a single HMS account.
type TokenGenerator struct {
	accessKey string
	secret    []byte
	clk       clock.Clock

	// TTL bounds token validity. Zero means the provider default of 24h.
	TTL time.Duration
}

// NewTokenGenerator returns a generator signing with the account's
// app secret. A nil clock uses wall time.
func NewTokenGenerator(accessKey, secret string, clk clock.Clock) *TokenGenerator {
	if clk == nil {
		clk = clock.New()
	}
	return &TokenGenerator{
		accessKey: accessKey,
		secret:    []byte(secret),
		clk:       clk,
	}
}

// RoomToken returns a signed token admitting the given user to the given
// room with the capabilities of the role.
func (g *TokenGenerator) RoomToken(roomID, userID string, role Role) (string, error) {
	if !role.Valid() {
		return "", errors.Errorf("hms: unsupported role %q", role)
	}
	claims := g.baseClaims(tokenTypeApp)
	claims["room_id"] = roomID
	claims["user_id"] = userID
	claims["role"] = string(role)
	return g.sign(claims)
}

// ManagementToken returns a signed token for server side room management
// API calls.
func (g *TokenGenerator) ManagementToken() (string, error) {
	return g.sign(g.baseClaims(tokenTypeManagement))
}

func (g *TokenGenerator) baseClaims(tokenType string) jwt.MapClaims {
	now := g.clk.Now()
	ttl := g.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return jwt.MapClaims{
		"access_key": g.accessKey,
		"type":       tokenType,
		"version":    tokenVersion,
		"jti":        uuid.New().String(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
}

func (g *TokenGenerator) sign(claims jwt.MapClaims) (string, error) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", errors.Trace(err)
	}
	return tok, nil
}

// ParseClaims verifies a token against the generator's secret and returns
// its claims. Intended for tests and for diagnostics tooling.
func (g *TokenGenerator) ParseClaims(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("hms: unexpected signing method %s", t.Method.Alg())
		}
		return g.secret, nil
	}, jwt.WithTimeFunc(g.clk.Now))
	if err != nil {
		return nil, errors.Trace(err)
	}
	return claims, nil
}
