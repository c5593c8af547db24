package main

import (
	"flag"
	"sentimentfactor/cmd"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	deps, err := cmd.InitializeDependencies(*configPath)
	if err != nil {
		zap.S().Fatalw("failed to initialize dependencies", "error", err.Error())
	}
	defer cmd.CloseDependencies(deps)

	zap.S().Infow("starting api", "port", deps.Config.Server.Port)
	if err := deps.ApiHandler.StartApi(deps.Config.Server.Port); err != nil {
		zap.S().Fatalw("api stopped", "error", err.Error())
	}
}
