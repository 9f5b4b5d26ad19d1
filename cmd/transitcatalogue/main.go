package main

import (
	"flag"
	"io"
	"os"

	"github.com/lintang-b-s/transitcatalogue/pkg/engine"
	"github.com/lintang-b-s/transitcatalogue/pkg/loader"
	"github.com/lintang-b-s/transitcatalogue/pkg/logger"
	"github.com/lintang-b-s/transitcatalogue/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	input     = flag.String("input", "", "request document path (.bz2 accepted), stdin when empty")
	configDir = flag.String("config", "./data/", "directory holding config.{yaml,json,toml}")
)

// reads a request document, answers its stat_requests and prints the responses as a json array
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

	if err := run(logger); err != nil {
		logger.Error("transit catalogue failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := loader.OpenDocument(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	doc, err := loader.ReadDocument(r)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(log, viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		return err
	}
	if err := eng.Configure(viper.GetFloat64("ROUTING_BUS_WAIT_TIME"),
		viper.GetFloat64("ROUTING_BUS_VELOCITY")); err != nil {
		return err
	}
	if err := loader.Load(doc, eng, log); err != nil {
		return err
	}

	responses := loader.Answer(eng, doc.StatRequests, viper.GetInt("STAT_WORKERS"), log)
	return loader.WriteResponses(os.Stdout, responses)
}
