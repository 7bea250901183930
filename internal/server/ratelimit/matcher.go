package ratelimit

import "strings"

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Health checks are always unlimited. Paths ending in "/"
// match by prefix so parameterized routes share one config. Returns nil when
// nothing matches; the caller then applies the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

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
