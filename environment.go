package packassets

import (
	"regexp"
	"slices"
	"strings"
)

// Environment is the asset delivery mode selected for a Resolver.
type Environment int

const (
	// Production serves built assets from the production base URL.
	Production Environment = iota
	// Development serves assets from the development server.
	Development
)

// String returns "production" or "development".
func (e Environment) String() string {
	if e == Development {
		return "development"
	}
	return "production"
}

// hostPattern captures everything after an optional http(s) scheme up to the first slash.
var hostPattern = regexp.MustCompile(`(?i)^(?:https?://)?([^/]+)`)

// DetectEnvironment picks the delivery mode. Production wins when no
// development URL is given, or when the production URL's host is one of
// domains. Domains are compared lower-cased.
func DetectEnvironment(productionURL, developmentURL string, domains []string) Environment {
	if strings.TrimSpace(developmentURL) == "" {
		return Production
	}
	if isProductionDomain(productionURL, domains) {
		return Production
	}
	return Development
}

func isProductionDomain(rawURL string, domains []string) bool {
	host := hostOf(rawURL)
	if host == "" {
		return false
	}
	return slices.ContainsFunc(domains, func(d string) bool {
		return strings.ToLower(strings.TrimSpace(d)) == host
	})
}

// hostOf returns the lower-cased authority of rawURL, or "" if there is none.
func hostOf(rawURL string) string {
	m := hostPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if len(m) < 2 {
		return ""
	}
	return strings.ToLower(m[1])
}
