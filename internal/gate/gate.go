// Package gate implements the shared-secret check that sits in front of
// order submission. It is a novelty gate, not an auth system: no lockout, no
// backoff, unlimited retries.
package gate

import "strings"

type Gate struct {
	secret string
}

func New(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authorize compares the input against the configured secret, ignoring case
// but not whitespace. An empty configured secret never authorizes.
func (g *Gate) Authorize(input string) bool {
	if g.secret == "" {
		return false
	}
	return strings.EqualFold(input, g.secret)
}
