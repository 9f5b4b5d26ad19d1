package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/transitcatalogue/pkg/engine"
	"github.com/lintang-b-s/transitcatalogue/pkg/http"
	"github.com/lintang-b-s/transitcatalogue/pkg/http/usecases"
	"github.com/lintang-b-s/transitcatalogue/pkg/loader"
	"github.com/lintang-b-s/transitcatalogue/pkg/logger"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	input        = flag.String("input", "./data/base_requests.json", "request document with the catalogue (base_requests), .bz2 accepted")
	configDir    = flag.String("config", "./data/", "directory holding config.{yaml,json,toml}")
	useRateLimit = flag.Bool("rate_limit", true, "enable per client rate limiting")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	routingEngine, err := engine.NewEngine(logger, viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		logger.Fatal("create engine", zap.Error(err))
	}
	if err := routingEngine.Configure(viper.GetFloat64("ROUTING_BUS_WAIT_TIME"),
		viper.GetFloat64("ROUTING_BUS_VELOCITY")); err != nil {
		logger.Fatal("invalid routing settings", zap.Error(err))
	}

	r, err := loader.OpenDocument(*input)
	if err != nil {
		logger.Fatal("open request document", zap.String("path", *input), zap.Error(err))
	}
	doc, err := loader.ReadDocument(r)
	r.Close()
	if err != nil {
		logger.Fatal("read request document", zap.String("path", *input), zap.Error(err))
	}
	if err := loader.Load(doc, routingEngine, logger); err != nil {
		logger.Fatal("load catalogue", zap.Error(err))
	}

	api := http.NewServer(logger)
	catalogueService := usecases.NewCatalogueService(logger, routingEngine)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	go func() {
		if err := api.Use(ctx, logger, *useRateLimit, catalogueService); err != nil && err != context.Canceled {
			logger.Error("API server stopped", zap.Error(err))
		}
	}()

	signal := http.GracefulShutdown()

	logger.Info("Transit Catalogue Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
