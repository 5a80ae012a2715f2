package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/delivery"
	hcdomain "github.com/x-xyz/ensapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary	Ping the rpc of every configured network
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	delivery.JsonResponse{data=map[string]string}
//	@Failure	503	{object}	delivery.JsonResponse{data=string}
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
