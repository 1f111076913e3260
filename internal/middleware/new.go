package middleware

import (
	"hospital-coordinator/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
