package model

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Capability is an authorization grant resolved by the chat front-end before
// it calls the gateway.
type Capability string

const (
	CapabilityStaff   Capability = "staff"
	CapabilityEconomy Capability = "economy"
)

type AppClaims struct {
	Identity     string       `json:"identity"`
	Capabilities []Capability `json:"capabilities,omitempty"`
	Roles        []string     `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Has reports whether the claims grant any of the given capabilities.
func (c *AppClaims) Has(caps ...Capability) bool {
	for _, want := range caps {
		if slices.Contains(c.Capabilities, want) {
			return true
		}
	}
	return false
}
