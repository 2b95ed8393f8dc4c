package auth

import (
	"strings"

	"github.com/mealsnap/mealsnap/internal/common"
)

// Credential is a parsed Authorization header value.
type Credential struct {
	Scheme string
	Token  string
}

// ParseAuthorizationHeader splits an Authorization header into its scheme
// and token parts. An empty header yields common.ErrMissingCredential; a
// header that is not a two-part "scheme token" value yields
// common.ErrInvalidToken. The scheme value itself is not checked; only the
// token part is meaningful downstream.
func ParseAuthorizationHeader(header string) (Credential, error) {
	if header == "" {
		return Credential{}, common.ErrMissingCredential
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Credential{}, common.ErrInvalidToken
	}

	return Credential{Scheme: parts[0], Token: parts[1]}, nil
}
