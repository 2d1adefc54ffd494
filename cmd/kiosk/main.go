package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aromabeans/coffee-feedback/capture"
	"github.com/aromabeans/coffee-feedback/client"
	"github.com/aromabeans/coffee-feedback/config"
	"github.com/aromabeans/coffee-feedback/kiosk"
	"github.com/aromabeans/coffee-feedback/logger"
)

func main() {
	config.LoadConfig()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend := client.New(config.BackendURL)
	log.Infof("Waiting for backend at %s", config.BackendURL)
	if err := backend.WaitReady(ctx); err != nil {
		log.WithError(err).Fatal("Backend did not become ready")
	}

	k := kiosk.New(
		backend,
		capture.NewExecCamera(config.CameraCmd),
		capture.NewExecRecorder(config.RecorderCmd),
		capture.NewHTTPTranscriber(config.TranscribeURL),
		os.Stdin,
		os.Stdout,
	)
	if err := k.Run(ctx); err != nil {
		log.WithError(err).Fatal("Kiosk exited with error")
	}
}
