package sfdc

import (
	"github.com/soffa-io/salesforce-gateway/h"
)

const (
	// DefaultDomain targets production logins, use "test" for sandboxes.
	DefaultDomain       = "login"
	securityTokenLength = 25
)

// Credentials carries the security-token authentication material
// (username + password + security token) forwarded on every request.
type Credentials struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	SecurityToken string `json:"security_token"`
	Domain        string `json:"domain"`
}

func (c Credentials) EffectiveDomain() string {
	if h.IsStrEmpty(c.Domain) {
		return DefaultDomain
	}
	return c.Domain
}

// ValidateSecurityToken checks the surface shape of a token: exactly 25
// alphanumeric characters. It never verifies the token against Salesforce.
func ValidateSecurityToken(token string) bool {
	if len(token) != securityTokenLength {
		return false
	}
	for _, r := range token {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
