package ratelimit

import "strings"

// MatchEndpoint resolves a request path and method to an endpoint
// configuration. Exact matches win over prefix matches; a Path ending in "/"
// matches by prefix (so "/sessions/" covers "/sessions/{id}/messages").
// Returns nil when nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
