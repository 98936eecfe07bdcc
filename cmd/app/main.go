package main

import (
	"oceanview/config"
	"oceanview/di"
	"oceanview/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
