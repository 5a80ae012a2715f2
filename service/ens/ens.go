// Package ens implements the ENS registry collaborator over go-ens.
//
// go-ens has no context aware calls, so only the reverse name lookup, which goes through
// chain.Client, honours the request deadline.
package ens

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/service/chain"
)

type Cfg struct {
	Chain chain.Client
	// RegistryAddrs overrides the registry address go-ens picks for a network
	RegistryAddrs map[domain.Network]domain.Address
}

func registryAddrs(cfg *Cfg) map[domain.Network]common.Address {
	res := make(map[domain.Network]common.Address)
	for network, addr := range cfg.RegistryAddrs {
		if addr.IsEmpty() {
			continue
		}
		res[network] = common.HexToAddress(addr.String())
	}
	return res
}
