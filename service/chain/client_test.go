package chain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	baseabi "github.com/x-xyz/ensapi/base/abi"
	"github.com/x-xyz/ensapi/domain"
)

var (
	mockCTX = bCtx.Background()
)

type testsuite struct {
	suite.Suite
	client Client
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupSuite() {
	// dialing http endpoints is lazy, nothing is contacted here
	cli, err := NewClient(mockCTX, &ClientCfg{
		RpcUrls: map[domain.Network]string{
			"sepolia": "http://127.0.0.1:8545",
			"mainnet": "http://127.0.0.1:8545",
		},
	})
	t.Require().NoError(err)
	t.client = cli
}

func (t *testsuite) TestNetworks() {
	t.Equal([]domain.Network{"mainnet", "sepolia"}, t.client.Networks())
}

func (t *testsuite) TestUnsupportedNetwork() {
	_, err := t.client.Backend("goerli")
	t.ErrorIs(err, domain.ErrUnsupportedNetwork)

	_, err = t.client.BlockNumber(mockCTX, "goerli")
	t.ErrorIs(err, domain.ErrUnsupportedNetwork)

	_, err = t.client.Call(mockCTX, "goerli", common.Address{}, nil, baseabi.NameResolverABI, "name", [32]byte{})
	t.ErrorIs(err, domain.ErrUnsupportedNetwork)
}

func (t *testsuite) TestBackend() {
	backend, err := t.client.Backend("mainnet")
	t.NoError(err)
	t.NotNil(backend)
}
