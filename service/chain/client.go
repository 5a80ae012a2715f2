package chain

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/domain"
	"golang.org/x/xerrors"
)

type ClientCfg struct {
	RpcUrls map[domain.Network]string
}

type Client interface {
	Call(bCtx.Ctx, domain.Network, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	Backend(domain.Network) (bind.ContractBackend, error)
	BlockNumber(bCtx.Ctx, domain.Network) (uint64, error)
	Networks() []domain.Network
}

type clientImpl struct {
	clients map[domain.Network]*ethclient.Client
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[domain.Network]*ethclient.Client)
	for network, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"network": network,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[network] = client
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

func (c *clientImpl) client(network domain.Network) (*ethclient.Client, error) {
	client, ok := c.clients[network]
	if !ok {
		return nil, xerrors.Errorf("network %q: %w", network, domain.ErrUnsupportedNetwork)
	}
	return client, nil
}

func (c *clientImpl) Backend(network domain.Network) (bind.ContractBackend, error) {
	client, err := c.client(network)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (c *clientImpl) Networks() []domain.Network {
	res := make([]domain.Network, 0, len(c.clients))
	for network := range c.clients {
		res = append(res, network)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, network domain.Network) (uint64, error) {
	client, err := c.client(network)
	if err != nil {
		return 0, err
	}
	return client.BlockNumber(ctx)
}

func (c *clientImpl) Call(ctx bCtx.Ctx, network domain.Network, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.client(network)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
