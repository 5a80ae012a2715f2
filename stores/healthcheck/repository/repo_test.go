package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain"
	mChain "github.com/x-xyz/ensapi/service/chain/mocks"
)

type repoSuite struct {
	suite.Suite

	chain *mChain.Client
}

func (s *repoSuite) SetupTest() {
	s.chain = &mChain.Client{}
}

func (s *repoSuite) TearDownTest() {
	s.chain.AssertExpectations(s.T())
}

func (s *repoSuite) TestPingRPC() {
	s.chain.On("Networks").Return([]domain.Network{"sepolia", "mainnet"}).Once()
	s.chain.On("BlockNumber", mock.Anything, domain.Network("sepolia")).Return(uint64(100), nil).Once()
	s.chain.On("BlockNumber", mock.Anything, domain.Network("mainnet")).Return(uint64(200), nil).Once()

	s.NoError(New(s.chain).PingRPC(ctx.Background()))
}

func (s *repoSuite) TestPingRPCFailed() {
	errRPC := errors.New("connection refused")
	s.chain.On("Networks").Return([]domain.Network{"sepolia", "mainnet"}).Once()
	s.chain.On("BlockNumber", mock.Anything, domain.Network("sepolia")).Return(uint64(0), errRPC).Once()

	err := New(s.chain).PingRPC(ctx.Background())
	s.ErrorIs(err, errRPC)
}

func (s *repoSuite) TestPingRPCNoNetwork() {
	s.chain.On("Networks").Return([]domain.Network{}).Once()

	s.Error(New(s.chain).PingRPC(ctx.Background()))
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}
