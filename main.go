package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aromabeans/coffee-feedback/api"
	"github.com/aromabeans/coffee-feedback/config"
	"github.com/aromabeans/coffee-feedback/logger"
	"github.com/aromabeans/coffee-feedback/store"
	"github.com/aromabeans/coffee-feedback/utils"
)

func main() {
	config.LoadConfig()
	log := logger.New().WithField("service", "coffee-feedback")
	log.Info("starting service")

	st, err := store.ConnectMongo(config.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer st.Close(context.Background())
	log.Info("connected to MongoDB")

	ai := utils.NewGemini(config.GeminiAPIKey)

	var notifier api.Notifier
	if wa, err := utils.NewWhatsAppSender(config.WhatsAppToken, config.WhatsAppPhoneNumberID); err != nil {
		log.WithError(err).Warn("whatsapp notifications disabled")
	} else {
		notifier = wa
	}

	var frames api.FrameStore
	if archive, err := utils.NewFrameArchive(context.Background()); err != nil {
		log.WithError(err).Warn("frame archive disabled")
	} else {
		frames = archive
	}

	server := api.NewServer(st, ai, notifier, frames)
	mux := http.NewServeMux()
	server.Routes(mux)

	addr := ":" + config.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      utils.CORSMiddleware(utils.LoggingMiddleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
