package ens

import (
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/metrics"
	"github.com/x-xyz/ensapi/domain"
	ensdomain "github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/chain"
	"github.com/x-xyz/ensapi/service/chain/contract"
	"golang.org/x/xerrors"
)

type impl struct {
	chain         chain.Client
	nameResolver  contract.NameResolverContract
	registryAddrs map[domain.Network]common.Address
	met           metrics.Service
}

func New(cfg *Cfg) ensdomain.Registry {
	return &impl{
		chain:         cfg.Chain,
		nameResolver:  contract.NewNameResolver(cfg.Chain),
		registryAddrs: registryAddrs(cfg),
		met:           metrics.New("ens"),
	}
}

func (im *impl) registry(network domain.Network) (*goens.Registry, error) {
	backend, err := im.chain.Backend(network)
	if err != nil {
		return nil, err
	}
	if addr, ok := im.registryAddrs[network]; ok {
		return goens.NewRegistryAt(backend, addr)
	}
	return goens.NewRegistry(backend)
}

func (im *impl) resolver(network domain.Network, handle *ensdomain.Resolver) (*goens.Resolver, error) {
	backend, err := im.chain.Backend(network)
	if err != nil {
		return nil, err
	}
	return goens.NewResolverAt(backend, handle.Domain, common.HexToAddress(handle.Address.String()))
}

func (im *impl) ResolverFor(ctx ctx.Ctx, network domain.Network, name string) (*ensdomain.Resolver, error) {
	defer im.met.BumpTime("resolver.latency", "network", network.String()).End()

	registry, err := im.registry(network)
	if err != nil {
		return nil, err
	}

	normalised, err := goens.NormaliseDomain(name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Warn("failed to goens.NormaliseDomain")
		return nil, xerrors.Errorf("normalise %q: %w", name, domain.ErrInvalidFormat)
	}

	addr, err := registry.ResolverAddress(normalised)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": normalised,
		}).Error("failed to registry.ResolverAddress")
		return nil, err
	}
	if addr == (common.Address{}) {
		return nil, nil
	}

	return &ensdomain.Resolver{
		Domain:  normalised,
		Address: domain.Address(addr.Hex()),
	}, nil
}

func (im *impl) NativeAddress(ctx ctx.Ctx, network domain.Network, handle *ensdomain.Resolver) (domain.Address, error) {
	defer im.met.BumpTime("addr.latency", "network", network.String()).End()

	r, err := im.resolver(network, handle)
	if err != nil {
		return "", err
	}
	addr, err := r.Address()
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"name":     handle.Domain,
			"resolver": handle.Address,
		}).Error("failed to resolver.Address")
		return "", err
	}
	return domain.Address(addr.Hex()), nil
}

func (im *impl) MultiChainAddress(ctx ctx.Ctx, network domain.Network, handle *ensdomain.Resolver, coinType uint64) ([]byte, error) {
	defer im.met.BumpTime("multiaddr.latency", "network", network.String()).End()

	r, err := im.resolver(network, handle)
	if err != nil {
		return nil, err
	}
	b, err := r.MultiAddress(coinType)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"name":     handle.Domain,
			"resolver": handle.Address,
			"coinType": coinType,
		}).Error("failed to resolver.MultiAddress")
		return nil, err
	}
	return b, nil
}

func (im *impl) TextRecord(ctx ctx.Ctx, network domain.Network, handle *ensdomain.Resolver, key string) (string, error) {
	defer im.met.BumpTime("text.latency", "network", network.String()).End()

	r, err := im.resolver(network, handle)
	if err != nil {
		return "", err
	}
	text, err := r.Text(key)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"name":     handle.Domain,
			"resolver": handle.Address,
			"key":      key,
		}).Error("failed to resolver.Text")
		return "", err
	}
	return text, nil
}

func (im *impl) OwnerOf(ctx ctx.Ctx, network domain.Network, name string) (domain.Address, error) {
	defer im.met.BumpTime("owner.latency", "network", network.String()).End()

	registry, err := im.registry(network)
	if err != nil {
		return "", err
	}
	owner, err := registry.Owner(name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to registry.Owner")
		return "", err
	}
	return domain.Address(owner.Hex()), nil
}

func (im *impl) NameFor(ctx ctx.Ctx, network domain.Network, reverseName string) (string, error) {
	defer im.met.BumpTime("name.latency", "network", network.String()).End()

	registry, err := im.registry(network)
	if err != nil {
		return "", err
	}
	addr, err := registry.ResolverAddress(reverseName)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": reverseName,
		}).Error("failed to registry.ResolverAddress")
		return "", err
	}
	if addr == (common.Address{}) {
		return "", nil
	}

	node, err := goens.NameHash(reverseName)
	if err != nil {
		return "", err
	}
	return im.nameResolver.Name(ctx, network, addr, node)
}

func (im *impl) Networks() []domain.Network {
	return im.chain.Networks()
}
