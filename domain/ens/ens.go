package ens

import (
	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain"
)

// Resolver is the handle of the resolver contract answering record queries of Domain
type Resolver struct {
	Domain  string         `json:"domain"`
	Address domain.Address `json:"address"`
}

type DomainInfo struct {
	Name     string          `json:"name"`
	Target   string          `json:"target"`
	Address  *string         `json:"address"`
	Resolver domain.Address  `json:"resolver"`
	Network  domain.Network  `json:"network"`
	Owner    *domain.Address `json:"owner,omitempty"`
}

// Registry is the ENS registry and resolver collaborator.
// A nil *Resolver, an empty value or a zero address mean the record is not set.
type Registry interface {
	ResolverFor(c ctx.Ctx, network domain.Network, name string) (*Resolver, error)
	NativeAddress(c ctx.Ctx, network domain.Network, resolver *Resolver) (domain.Address, error)
	MultiChainAddress(c ctx.Ctx, network domain.Network, resolver *Resolver, coinType uint64) ([]byte, error)
	TextRecord(c ctx.Ctx, network domain.Network, resolver *Resolver, key string) (string, error)
	OwnerOf(c ctx.Ctx, network domain.Network, name string) (domain.Address, error)
	NameFor(c ctx.Ctx, network domain.Network, reverseName string) (string, error)
	Networks() []domain.Network
}

// Usecase resolves ENS queries. A nil result without error means nothing was found.
type Usecase interface {
	Resolve(c ctx.Ctx, input string, network domain.Network) (*string, error)
	DomainInfo(c ctx.Ctx, input string, network domain.Network) (*DomainInfo, error)
	ReverseResolve(c ctx.Ctx, address domain.Address, network domain.Network) (*string, error)
	Networks(c ctx.Ctx) []domain.Network
}
