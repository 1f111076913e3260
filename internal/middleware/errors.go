package middleware

import "errors"

var errRateLimited = errors.New("rate limit exceeded")
