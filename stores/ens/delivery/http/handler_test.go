package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensapi/base/ptr"
	"github.com/x-xyz/ensapi/base/validator"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	mEns "github.com/x-xyz/ensapi/domain/ens/mocks"
	"github.com/x-xyz/ensapi/middleware"
)

type handlerSuite struct {
	suite.Suite

	e       *echo.Echo
	usecase *mEns.Usecase
}

func (s *handlerSuite) SetupTest() {
	s.usecase = &mEns.Usecase{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(goValidator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.usecase)
}

func (s *handlerSuite) TearDownTest() {
	s.usecase.AssertExpectations(s.T())
}

func (s *handlerSuite) do(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestResolve() {
	s.usecase.On("Resolve", mock.Anything, "vitalik.eth:btc", domain.Network("mainnet")).
		Return(ptr.String("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"), nil).Once()

	rec := s.do("/ens/resolve/vitalik.eth:btc")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH","status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestResolveEscapedSeparator() {
	s.usecase.On("Resolve", mock.Anything, "vitalik.eth:btc", domain.Network("mainnet")).
		Return(ptr.String("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"), nil).Once()

	rec := s.do("/ens/resolve/vitalik.eth%3Abtc")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH","status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestResolveBadEscape() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.Path = "/ens/resolve/vitalik.eth%zz"
	req.URL.RawPath = "/ens/resolve/vitalik.eth%zz"
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.usecase.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestResolveWithNetwork() {
	s.usecase.On("Resolve", mock.Anything, "vitalik.eth", domain.Network("sepolia")).
		Return(ptr.String("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"), nil).Once()

	rec := s.do("/ens/resolve/vitalik.eth?network=sepolia")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045","status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestResolveNotFound() {
	s.usecase.On("Resolve", mock.Anything, "nobody.eth", domain.Network("mainnet")).
		Return(nil, nil).Once()

	rec := s.do("/ens/resolve/nobody.eth")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":null,"status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestResolveInvalidFormat() {
	err := xerrors.Errorf("%q: %w", "vitalik.xyz:btc", domain.ErrInvalidFormat)
	s.usecase.On("Resolve", mock.Anything, "vitalik.xyz:btc", domain.Network("mainnet")).
		Return(nil, err).Once()

	rec := s.do("/ens/resolve/vitalik.xyz:btc")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), `"status":"fail"`)
}

func (s *handlerSuite) TestResolveUnsupportedNetwork() {
	err := xerrors.Errorf("network %q: %w", "ropsten", domain.ErrUnsupportedNetwork)
	s.usecase.On("Resolve", mock.Anything, "vitalik.eth", domain.Network("ropsten")).
		Return(nil, err).Once()

	rec := s.do("/ens/resolve/vitalik.eth?network=ropsten")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestResolveMalformedNetwork() {
	rec := s.do("/ens/resolve/vitalik.eth?network=MAINNET")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.usecase.AssertNotCalled(s.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestResolveInternalError() {
	s.usecase.On("Resolve", mock.Anything, "vitalik.eth", domain.Network("mainnet")).
		Return(nil, errors.New("boom")).Once()

	rec := s.do("/ens/resolve/vitalik.eth")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"data":"boom","status":"fail"}`, rec.Body.String())
}

func (s *handlerSuite) TestDomainInfo() {
	owner := domain.Address("0xd8da6bf26964af9d7eed9e03e53415d37aa96045")
	info := &ens.DomainInfo{
		Name:     "vitalik.eth",
		Target:   "twitter",
		Address:  ptr.String("VitalikButerin"),
		Resolver: "0x231b0ee14048e9dccd1d247744d114a4eb5e8e63",
		Network:  "mainnet",
		Owner:    &owner,
	}
	s.usecase.On("DomainInfo", mock.Anything, "vitalik.twitter", domain.Network("mainnet")).
		Return(info, nil).Once()

	rec := s.do("/ens/info/vitalik.twitter")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{
		"data": {
			"name": "vitalik.eth",
			"target": "twitter",
			"address": "VitalikButerin",
			"resolver": "0x231b0ee14048e9dccd1d247744d114a4eb5e8e63",
			"network": "mainnet",
			"owner": "0xd8da6bf26964af9d7eed9e03e53415d37aa96045"
		},
		"status": "success"
	}`, rec.Body.String())
}

func (s *handlerSuite) TestReverseResolve() {
	addr := domain.Address("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.usecase.On("ReverseResolve", mock.Anything, addr, domain.Network("mainnet")).
		Return(ptr.String("vitalik.eth"), nil).Once()

	rec := s.do("/ens/reverse-resolve/" + addr.String())
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":"vitalik.eth","status":"success"}`, rec.Body.String())
}

func (s *handlerSuite) TestDomainInfoEscapedSeparator() {
	s.usecase.On("DomainInfo", mock.Anything, "vitalik.eth:twitter", domain.Network("mainnet")).
		Return(nil, nil).Once()

	rec := s.do("/ens/info/vitalik.eth%3atwitter")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestReverseResolveEscaped() {
	addr := domain.Address("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.usecase.On("ReverseResolve", mock.Anything, addr, domain.Network("mainnet")).
		Return(ptr.String("vitalik.eth"), nil).Once()

	rec := s.do("/ens/reverse-resolve/%30xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestReverseResolveInvalidAddress() {
	rec := s.do("/ens/reverse-resolve/0x1234")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), domain.ErrInvalidAddress.Error())
}

func (s *handlerSuite) TestNetworks() {
	s.usecase.On("Networks", mock.Anything).Return([]domain.Network{"mainnet", "sepolia"}).Once()

	rec := s.do("/ens/networks")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":["mainnet","sepolia"],"status":"success"}`, rec.Body.String())
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}
