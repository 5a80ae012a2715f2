package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/goroutine"
	"github.com/x-xyz/ensapi/base/log"
	bValidator "github.com/x-xyz/ensapi/base/validator"
	"github.com/x-xyz/ensapi/domain"
	mmiddleware "github.com/x-xyz/ensapi/middleware"
	"github.com/x-xyz/ensapi/service/chain"
	"github.com/x-xyz/ensapi/service/ens"
	ens_delivery "github.com/x-xyz/ensapi/stores/ens/delivery/http"
	ens_usecase "github.com/x-xyz/ensapi/stores/ens/usecase"
	hc_delivery "github.com/x-xyz/ensapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/ensapi/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/ensapi/stores/healthcheck/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/ensapi/app/api/docs"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			ENS API
//	@version		1.0
//	@description	Multi-chain ENS name resolution.

// main
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: mmiddleware.NewRequestID,
	}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	networks := viper.Sub("networks")
	if networks == nil {
		context.Panic("no networks configured")
	}
	keys := networks.AllSettings()
	rpcs := make(map[domain.Network]string)
	registries := make(map[domain.Network]domain.Address)
	for k := range keys {
		network := domain.Network(k)
		rpcs[network] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		registries[network] = domain.Address(networks.GetString(fmt.Sprintf("%s.registry", k))).ToLower()
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	ensService := ens.New(&ens.Cfg{
		Chain:         chainService,
		RegistryAddrs: registries,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService)
	hc := hc_usecase.New(hcRepo)
	ensUsecase := ens_usecase.New(ensService)

	hc_delivery.New(e, hc)
	ens_delivery.New(e, ensUsecase)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := &http.Server{
		Addr:         viper.GetString("server.address"),
		ReadTimeout:  viper.GetDuration("http.timeout"),
		WriteTimeout: viper.GetDuration("http.timeout"),
	}
	done := goroutine.RecoverableGo(func() {
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case p, ok := <-done:
		if ok {
			log.Log().WithField("panic", p.Panic).Error("server goroutine panicked")
		}
	}
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
