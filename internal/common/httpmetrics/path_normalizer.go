package httpmetrics

import "strings"

const unmatchedRoute = "unmatched"

var knownRoutes = map[string]struct{}{
	"/token":           {},
	"/users/me":        {},
	"/courses":         {},
	"/recommendations": {},
	"/health":          {},
	"/metrics":         {},
}

// NormalizePath maps a request path to its route label. Trailing-slash
// aliases share a label and anything outside the advisor's routes is
// reported as "unmatched", keeping label cardinality fixed.
func NormalizePath(path string) string {
	route := strings.TrimSuffix(path, "/")
	if _, ok := knownRoutes[route]; ok {
		return route
	}
	return unmatchedRoute
}
