package handler

import (
	"net/http"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/di"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
