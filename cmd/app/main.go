package main

import (
	_ "time/tzdata"

	"hms/config"
	"hms/di"
	"hms/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
