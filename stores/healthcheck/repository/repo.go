package repository

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/log"
	hcdomain "github.com/x-xyz/ensapi/domain/healthcheck"
	"github.com/x-xyz/ensapi/service/chain"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chain chain.Client
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(chain chain.Client) hcdomain.HealthCheckRepo {
	return &impl{
		chain: chain,
	}
}

func (im *impl) PingRPC(context ctx.Ctx) error {
	networks := im.chain.Networks()
	if len(networks) == 0 {
		return xerrors.New("no network configured")
	}

	for _, network := range networks {
		ctx, cancel := ctx.WithTimeout(context, pingTimeout)
		blk, err := im.chain.BlockNumber(ctx, network)
		cancel()
		if err != nil {
			context.WithFields(log.Fields{
				"err":     err,
				"network": network,
			}).Error("ping rpc error")
			return xerrors.Errorf("network %s: %w", network, err)
		}
		context.WithFields(log.Fields{
			"network": network,
			"block":   blk,
		}).Debug("ping rpc")
	}
	return nil
}
