package middleware

import (
	"plant-care-management/config"
	"plant-care-management/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *clientRateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newClientRateLimiter(cfg.RateLimit.RequestsPerMin),
	}
}
