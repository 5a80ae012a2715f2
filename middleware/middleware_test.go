package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensapi/base/ctx"
)

type middlewareSuite struct {
	suite.Suite

	e *echo.Echo
}

func (s *middlewareSuite) SetupTest() {
	s.e = echo.New()
	m := InitMiddleware()
	s.e.Use(m.CORS)
	s.e.Use(m.AddContext())
	s.e.GET("/addr/:address", func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		return c.String(http.StatusOK, "ok")
	}, IsValidAddress("address"))
}

func (s *middlewareSuite) do(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *middlewareSuite) TestIsValidAddress() {
	tests := []struct {
		desc    string
		address string
		expCode int
	}{
		{
			desc:    "checksummed",
			address: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
			expCode: http.StatusOK,
		},
		{
			desc:    "lower case",
			address: "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
			expCode: http.StatusOK,
		},
		{
			desc:    "too short",
			address: "0x1234",
			expCode: http.StatusBadRequest,
		},
		{
			desc:    "not hex",
			address: "vitalik.eth",
			expCode: http.StatusBadRequest,
		},
	}
	for _, t := range tests {
		rec := s.do("/addr/" + t.address)
		s.Equal(t.expCode, rec.Code, t.desc)
		s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"), t.desc)
	}
}

func (s *middlewareSuite) TestNewRequestID() {
	id1 := NewRequestID()
	id2 := NewRequestID()
	s.Len(id1, 36)
	s.NotEqual(id1, id2)
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}
