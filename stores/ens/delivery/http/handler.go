package http

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/delivery"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/middleware"
	"golang.org/x/xerrors"
)

type handler struct {
	ens ens.Usecase
}

func New(e *echo.Echo, ens ens.Usecase) {
	h := &handler{
		ens,
	}

	g := e.Group("ens")

	g.GET("/resolve/:name", h.Resolve)

	g.GET("/info/:name", h.DomainInfo)

	g.GET("/reverse-resolve/:address", h.ReverseResolve, middleware.IsValidAddress("address"))

	g.GET("/networks", h.Networks)
}

// unescape decodes a path param, echo keeps them as sent, e.g. `vitalik.eth%3Abtc`
func unescape(param string, sentinel error) (string, error) {
	res, err := url.PathUnescape(param)
	if err != nil {
		return "", xerrors.Errorf("%q: %v: %w", param, err, sentinel)
	}
	return res, nil
}

func network(n domain.Network) domain.Network {
	if n == "" {
		return domain.DefaultNetwork
	}
	return n
}

// Resolve
//
//	@Summary		Resolve an ENS name
//	@Description	Resolve `name.eth`, `name.eth:<chain>` or `name.<chain>` into an address or a text record. Data is null when nothing is set.
//	@Tags			ens
//	@Produce		json
//	@Param			name	path		string	true	"ens query"	example(vitalik.eth:btc)
//	@Param			network	query		string	false	"configured network, default mainnet"	example(mainnet)
//	@Success		200		{object}	delivery.JsonResponse{data=string}
//	@Failure		400
//	@Failure		500
//	@Router			/ens/resolve/{name} [get]
func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name    string         `param:"name" validate:"required"`
		Network domain.Network `query:"network" validate:"omitempty,network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	name, err := unescape(p.Name, domain.ErrInvalidFormat)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address, err := h.ens.Resolve(ctx, name, network(p.Network))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

// DomainInfo
//
//	@Summary	Get the resolver, owner and resolved address of an ENS name
//	@Tags		ens
//	@Produce	json
//	@Param		name	path		string	true	"ens query"	example(vitalik.eth)
//	@Param		network	query		string	false	"configured network, default mainnet"	example(mainnet)
//	@Success	200		{object}	delivery.JsonResponse{data=ens.DomainInfo}
//	@Failure	400
//	@Failure	500
//	@Router		/ens/info/{name} [get]
func (h *handler) DomainInfo(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name    string         `param:"name" validate:"required"`
		Network domain.Network `query:"network" validate:"omitempty,network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	name, err := unescape(p.Name, domain.ErrInvalidFormat)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	info, err := h.ens.DomainInfo(ctx, name, network(p.Network))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// ReverseResolve
//
//	@Summary	Look up the primary ENS name of an address
//	@Tags		ens
//	@Produce	json
//	@Param		address	path		string	true	"address"	example(0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045)
//	@Param		network	query		string	false	"configured network, default mainnet"	example(mainnet)
//	@Success	200		{object}	delivery.JsonResponse{data=string}
//	@Failure	400
//	@Failure	500
//	@Router		/ens/reverse-resolve/{address} [get]
func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address" validate:"required"`
		Network domain.Network `query:"network" validate:"omitempty,network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	address, err := unescape(p.Address.String(), domain.ErrInvalidAddress)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, domain.Address(address), network(p.Network))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}

// Networks
//
//	@Summary	List configured networks
//	@Tags		ens
//	@Produce	json
//	@Success	200	{object}	delivery.JsonResponse{data=[]string}
//	@Router		/ens/networks [get]
func (h *handler) Networks(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.ens.Networks(ctx))
}
