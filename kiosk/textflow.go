package kiosk

import (
	"context"
	"fmt"
	"strings"
)

// TextFeedback runs the typed feedback flow: pick a category and product,
// write a message, submit, then show the AI suggestion on the thank-you
// screen.
func (k *Kiosk) TextFeedback(ctx context.Context) {
	categories, products := k.referenceData(ctx)

	for {
		category, ok := k.selectOption("category", categories)
		if !ok {
			return
		}
		product, ok := k.selectOption("product", products)
		if !ok {
			return
		}
		message, ok := k.readLine("Your feedback: ")
		if !ok {
			return
		}
		message = strings.TrimSpace(message)

		if message == "" || category == "" || product == "" {
			fmt.Fprintln(k.out, "Please provide feedback, category, and product.")
			continue
		}

		if err := k.backend.SubmitTextFeedback(ctx, message, category, product); err != nil {
			k.log.WithError(err).Error("text feedback submission failed")
			fmt.Fprintf(k.out, "Could not submit your feedback: %v\n", err)
			continue
		}

		fmt.Fprintln(k.out, "Thank you for your feedback!")
		if suggestion, err := k.backend.AISuggestion(ctx, message, category, product); err != nil {
			k.log.WithError(err).Error("ai suggestion fetch failed")
		} else if suggestion != "" {
			fmt.Fprintf(k.out, "Suggestion for us: %s\n", suggestion)
		}
		k.sleep(k.textHomeDelay)
		return
	}
}
