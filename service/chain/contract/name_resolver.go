package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/ensapi/base/abi"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/service/chain"
	"golang.org/x/xerrors"
)

type NameResolverContract interface {
	Name(ctx bCtx.Ctx, network domain.Network, addr common.Address, node [32]byte) (string, error)
}

type NameResolver struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewNameResolver(chainService chain.Client) NameResolverContract {
	return &NameResolver{
		abi:          baseabi.NameResolverABI,
		chainService: chainService,
	}
}

func (n *NameResolver) Name(ctx bCtx.Ctx, network domain.Network, addr common.Address, node [32]byte) (string, error) {
	method := "name"
	unpacked, err := n.chainService.Call(ctx, network, addr, nil, n.abi, method, node)
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", xerrors.Errorf("unexpected %d outputs of %s", len(unpacked), method)
	}
	name, ok := unpacked[0].(string)
	if !ok {
		return "", xerrors.Errorf("unexpected output type %T of %s", unpacked[0], method)
	}
	return name, nil
}
