// Package kiosk implements the customer-facing feedback flows: text, voice,
// and emotion capture, plus the shop info page. One parameterized
// implementation replaces the duplicated per-host frontend components.
package kiosk

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aromabeans/coffee-feedback/capture"
	"github.com/aromabeans/coffee-feedback/client"
	"github.com/aromabeans/coffee-feedback/logger"
)

// Kiosk drives the interactive feedback terminal. The media capabilities are
// injected so the flows run against fakes in tests.
type Kiosk struct {
	backend     *client.Client
	camera      capture.Camera
	recorder    capture.Recorder
	transcriber capture.Transcriber

	in  *bufio.Scanner
	out io.Writer
	log *logger.Logger

	// Thank-you screens pause before returning home: the text flow holds
	// for 5s, the others for 2s.
	textHomeDelay time.Duration
	homeDelay     time.Duration
	sleep         func(time.Duration)
}

func New(backend *client.Client, camera capture.Camera, recorder capture.Recorder, transcriber capture.Transcriber, in io.Reader, out io.Writer) *Kiosk {
	return &Kiosk{
		backend:       backend,
		camera:        camera,
		recorder:      recorder,
		transcriber:   transcriber,
		in:            bufio.NewScanner(in),
		out:           out,
		log:           logger.New(),
		textHomeDelay: 5 * time.Second,
		homeDelay:     2 * time.Second,
		sleep:         time.Sleep,
	}
}

// Run shows the home menu until the customer exits or input ends.
func (k *Kiosk) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(k.out)
		fmt.Fprintln(k.out, "=== Aroma Beans Coffee ===")
		fmt.Fprintln(k.out, "1) Text feedback")
		fmt.Fprintln(k.out, "2) Voice feedback")
		fmt.Fprintln(k.out, "3) Emotion feedback")
		fmt.Fprintln(k.out, "4) About the shop")
		fmt.Fprintln(k.out, "5) Exit")

		choice, ok := k.readLine("> ")
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			k.TextFeedback(ctx)
		case "2":
			k.VoiceFeedback(ctx)
		case "3":
			k.EmotionFeedback(ctx)
		case "4":
			k.ShowInfo(ctx)
		case "5", "q", "quit", "exit":
			return nil
		}
	}
}

// ShowInfo prints the shop introduction with the live menu.
func (k *Kiosk) ShowInfo(ctx context.Context) {
	info, err := CompanyInfo(ctx, k.backend)
	if err != nil {
		k.log.WithError(err).Error("failed to load company info")
		fmt.Fprintln(k.out, "Sorry, the shop info is unavailable right now.")
		return
	}
	fmt.Fprintln(k.out, info)
}

// referenceData loads the category and product dropdown contents. Failures
// are logged and leave the corresponding list empty, mirroring an empty
// dropdown.
func (k *Kiosk) referenceData(ctx context.Context) (categories, products []string) {
	categories, err := k.backend.Categories(ctx)
	if err != nil {
		k.log.WithError(err).Error("error fetching categories")
	}
	items, err := k.backend.Products(ctx)
	if err != nil {
		k.log.WithError(err).Error("error fetching products")
	}
	for _, p := range items {
		products = append(products, p.Name)
	}
	return categories, products
}

// readLine prompts and reads one input line; ok is false once input ends.
func (k *Kiosk) readLine(prompt string) (string, bool) {
	fmt.Fprint(k.out, prompt)
	if !k.in.Scan() {
		return "", false
	}
	return k.in.Text(), true
}

// selectOption shows a numbered list and returns the chosen entry, or ""
// when nothing valid was selected.
func (k *Kiosk) selectOption(label string, options []string) (string, bool) {
	fmt.Fprintf(k.out, "-- Select %s --\n", label)
	for i, opt := range options {
		fmt.Fprintf(k.out, "%d) %s\n", i+1, opt)
	}
	choice, ok := k.readLine(label + ": ")
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n < 1 || n > len(options) {
		return "", true
	}
	return options[n-1], true
}
