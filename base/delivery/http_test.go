package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensapi/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		desc    string
		status  int
		data    interface{}
		expCode int
		expBody string
	}{
		{
			desc:    "success",
			status:  http.StatusOK,
			data:    "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
			expCode: http.StatusOK,
			expBody: `{"data":"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045","status":"success"}`,
		},
		{
			desc:    "nil data",
			status:  http.StatusOK,
			data:    (*string)(nil),
			expCode: http.StatusOK,
			expBody: `{"data":null,"status":"success"}`,
		},
		{
			desc:    "invalid format",
			status:  http.StatusInternalServerError,
			data:    xerrors.Errorf("foo.xyz:btc: %w", domain.ErrInvalidFormat),
			expCode: http.StatusBadRequest,
		},
		{
			desc:    "invalid address",
			status:  http.StatusInternalServerError,
			data:    domain.ErrInvalidAddress,
			expCode: http.StatusBadRequest,
		},
		{
			desc:    "unsupported network",
			status:  http.StatusInternalServerError,
			data:    xerrors.Errorf("network %q: %w", "ropsten", domain.ErrUnsupportedNetwork),
			expCode: http.StatusBadRequest,
		},
		{
			desc:    "internal",
			status:  http.StatusInternalServerError,
			data:    errors.New("boom"),
			expCode: http.StatusInternalServerError,
			expBody: `{"data":"boom","status":"fail"}`,
		},
	}
	for _, tt := range tests {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		assert.NoError(t, MakeJsonResp(c, tt.status, tt.data), tt.desc)
		assert.Equal(t, tt.expCode, rec.Code, tt.desc)
		if tt.expBody != "" {
			assert.JSONEq(t, tt.expBody, rec.Body.String(), tt.desc)
		}
	}
}
