package main

import (
	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/di"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
