package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/ensapi/base/log"
)

// Ctx carries the request deadline together with a logger holding the request fields
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return From(context.Background())
}

// From wraps a plain context, e.g. the one of an incoming http request
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
