package main

import (
	"net/http"

	"github.com/fusiongabin/uno-server/server"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// a missing .env is fine; the environment may be set directly
	godotenv.Load()

	var cfg server.Config
	if err := envdecode.Decode(&cfg); err != nil {
		logger.WithError(err).Fatal("could not decode configuration")
	}

	s := server.NewServer(cfg, logger)

	logger.WithField("addr", cfg.Addr).Info("listening")
	logger.Fatal(http.ListenAndServe(cfg.Addr, s))
}
