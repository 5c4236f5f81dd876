package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"

	"github.com/iripple/boardroom/internal/core/domain"
)

// CalendarScope is the read-only scope requested for listings.
// The service never writes to the calendar.
const CalendarScope = calendar.CalendarReadonlyScope

// ServiceAccount holds resolved service-account credential material.
type ServiceAccount struct {
	// ClientEmail is the service account's email address.
	ClientEmail string
	// PrivateKey is the PEM-encoded signing key, with real newlines.
	PrivateKey string
}

// serviceAccountKey is the subset of a Google service-account key file
// the boardroom service needs.
type serviceAccountKey struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// ParseServiceAccount resolves credential material from either a
// base64-encoded JSON key file or discrete email/private-key values.
// The key file takes precedence when both are set. Private keys pasted
// into environment variables often carry literal \n sequences; these are
// normalized to real newlines.
func ParseServiceAccount(encodedKeyJSON, clientEmail, privateKey string) (*ServiceAccount, error) {
	if encodedKeyJSON != "" {
		raw, err := base64.StdEncoding.DecodeString(encodedKeyJSON)
		if err != nil {
			return nil, fmt.Errorf("%w: decode service account key: %v", domain.ErrCredentials, err)
		}

		var key serviceAccountKey
		if err := json.Unmarshal(raw, &key); err != nil {
			return nil, fmt.Errorf("%w: parse service account key: %v", domain.ErrCredentials, err)
		}
		clientEmail = key.ClientEmail
		privateKey = key.PrivateKey
	}

	if clientEmail == "" || privateKey == "" {
		return nil, fmt.Errorf("%w: missing client email or private key", domain.ErrCredentials)
	}

	return &ServiceAccount{
		ClientEmail: clientEmail,
		PrivateKey:  normalizePrivateKey(privateKey),
	}, nil
}

// normalizePrivateKey turns literal \n sequences into real newlines so
// single-line environment values parse as PEM.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// TokenSource returns an oauth2 token source that signs JWTs with the
// service-account key for the read-only calendar scope.
func (sa *ServiceAccount) TokenSource(ctx context.Context) oauth2.TokenSource {
	cfg := &jwt.Config{
		Email:      sa.ClientEmail,
		PrivateKey: []byte(sa.PrivateKey),
		Scopes:     []string{CalendarScope},
		TokenURL:   googleauth.JWTTokenURL,
	}
	return cfg.TokenSource(ctx)
}
