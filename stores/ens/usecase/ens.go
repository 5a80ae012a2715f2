package usecase

import (
	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/metrics"
	"github.com/x-xyz/ensapi/base/multicoin"
	"github.com/x-xyz/ensapi/base/ptr"
	"github.com/x-xyz/ensapi/base/validator"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"golang.org/x/xerrors"
)

type impl struct {
	registry ens.Registry
	met      metrics.Service
}

func New(registry ens.Registry) ens.Usecase {
	return &impl{
		registry: registry,
		met:      metrics.New("ens_usecase"),
	}
}

func (im *impl) Resolve(c ctx.Ctx, input string, network domain.Network) (*string, error) {
	query, err := ens.Parse(input)
	if err != nil {
		return nil, err
	}
	c.Logger = c.WithFields(log.Fields{
		"name":    query.BaseDomain,
		"target":  query.Target,
		"network": network,
	})

	handle, err := im.resolverFor(c, network, query.BaseDomain)
	if err != nil || handle == nil {
		return nil, err
	}

	return im.resolveRecord(c, network, handle, ens.Classify(query.Target))
}

func (im *impl) DomainInfo(c ctx.Ctx, input string, network domain.Network) (*ens.DomainInfo, error) {
	query, err := ens.Parse(input)
	if err != nil {
		return nil, err
	}
	c.Logger = c.WithFields(log.Fields{
		"name":    query.BaseDomain,
		"target":  query.Target,
		"network": network,
	})

	handle, err := im.resolverFor(c, network, query.BaseDomain)
	if err != nil || handle == nil {
		return nil, err
	}

	address, err := im.resolveRecord(c, network, handle, ens.Classify(query.Target))
	if err != nil {
		return nil, err
	}

	info := &ens.DomainInfo{
		Name:     handle.Domain,
		Target:   query.Target,
		Address:  address,
		Resolver: handle.Address,
		Network:  network,
	}

	owner, err := im.registry.OwnerOf(c, network, handle.Domain)
	if err != nil {
		if err := im.notFound(c, err, "registry.OwnerOf failed"); err != nil {
			return nil, err
		}
	} else if !owner.IsZero() {
		info.Owner = &owner
	}

	return info, nil
}

func (im *impl) ReverseResolve(c ctx.Ctx, address domain.Address, network domain.Network) (*string, error) {
	if !validator.IsValidAddress(address.String()) {
		return nil, xerrors.Errorf("%q: %w", address, domain.ErrInvalidAddress)
	}
	c.Logger = c.WithFields(log.Fields{
		"address": address,
		"network": network,
	})

	name, err := im.registry.NameFor(c, network, ens.ReverseKey(address.String()))
	if err != nil {
		return nil, im.notFound(c, err, "registry.NameFor failed")
	}
	if name == "" {
		return nil, nil
	}
	return ptr.String(name), nil
}

func (im *impl) Networks(c ctx.Ctx) []domain.Network {
	return im.registry.Networks()
}

func (im *impl) resolverFor(c ctx.Ctx, network domain.Network, name string) (*ens.Resolver, error) {
	handle, err := im.registry.ResolverFor(c, network, name)
	if err != nil {
		return nil, im.notFound(c, err, "registry.ResolverFor failed")
	}
	if handle == nil {
		c.Debug("no resolver")
	}
	return handle, nil
}

func (im *impl) resolveRecord(c ctx.Ctx, network domain.Network, handle *ens.Resolver, record ens.Record) (*string, error) {
	switch record.Kind {
	case ens.RecordText:
		text, err := im.registry.TextRecord(c, network, handle, record.Key)
		if err != nil {
			return nil, im.notFound(c, err, "registry.TextRecord failed")
		}
		if text == "" {
			return nil, nil
		}
		return ptr.String(text), nil

	case ens.RecordMultiChain:
		b, err := im.registry.MultiChainAddress(c, network, handle, ens.CoinType(record.Key))
		if err != nil {
			return nil, im.notFound(c, err, "registry.MultiChainAddress failed")
		}
		if multicoin.IsEmpty(b, record.Key) {
			return nil, nil
		}

		res := multicoin.Decode(b, record.Key)
		if res.IsFallback() {
			im.met.BumpSum("decode.fallback", 1, "chain", record.Key)
			c.WithFields(log.Fields{
				"err":   res.Err,
				"chain": record.Key,
			}).Info("multicoin.Decode fell back to hex")
		}
		return &res.Address, nil

	default:
		addr, err := im.registry.NativeAddress(c, network, handle)
		if err != nil {
			return nil, im.notFound(c, err, "registry.NativeAddress failed")
		}
		if addr.IsZero() {
			return nil, nil
		}
		return ptr.String(addr.String()), nil
	}
}

// notFound keeps errors caused by the request and turns registry failures into not found.
func (im *impl) notFound(c ctx.Ctx, err error, msg string) error {
	if domain.IsRequestError(err) {
		return err
	}
	im.met.BumpSum("registry.err", 1)
	c.WithField("err", err).Warn(msg)
	return nil
}
