package kiosk

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EmotionFeedback runs the camera flow: capture a frame after a countdown,
// let the backend classify the emotion, and either auto-submit the derived
// rating or, for negative emotions, collect a reason first. The camera is
// released before any network call.
func (k *Kiosk) EmotionFeedback(ctx context.Context) {
	frame, ok := k.captureFrame(ctx)
	if !ok || frame == nil {
		return
	}

	emotion, err := k.backend.DetectEmotion(ctx, frame)
	if err != nil {
		k.log.WithError(err).Error("emotion detection failed")
		fmt.Fprintf(k.out, "Could not detect your emotion: %v\n", err)
		return
	}

	rating := StarRating(emotion)
	fmt.Fprintf(k.out, "Detected emotion: %s\n", emotion)
	fmt.Fprintf(k.out, "Rating: %s\n", stars(rating))

	if !IsNegative(emotion) {
		if err := k.backend.SubmitEmotionFeedback(ctx, emotion, rating, "", "", "", ""); err != nil {
			k.log.WithError(err).Error("emotion feedback submission failed")
			fmt.Fprintf(k.out, "Could not submit your feedback: %v\n", err)
			return
		}
		fmt.Fprintln(k.out, "Thank you for your feedback!")
		k.sleep(k.homeDelay)
		return
	}

	fmt.Fprintln(k.out, "Sorry we let you down. Tell us what went wrong?")
	reason, reasonType, ok := k.captureReason(ctx)
	if !ok {
		return
	}
	if reason == "" {
		// No reason given: record the emotion and rating alone.
		if err := k.backend.SubmitEmotionFeedback(ctx, emotion, rating, "", "", "", ""); err != nil {
			k.log.WithError(err).Error("emotion feedback submission failed")
			fmt.Fprintf(k.out, "Could not submit your feedback: %v\n", err)
			return
		}
		fmt.Fprintln(k.out, "Thank you for your feedback!")
		k.sleep(k.homeDelay)
		return
	}

	categories, products := k.referenceData(ctx)
	category, ok := k.selectOption("category", categories)
	if !ok {
		return
	}
	product, ok := k.selectOption("product", products)
	if !ok {
		return
	}

	if err := k.backend.SubmitEmotionFeedback(ctx, emotion, rating, reason, reasonType, category, product); err != nil {
		k.log.WithError(err).Error("emotion feedback submission failed")
		fmt.Fprintf(k.out, "Could not submit your feedback: %v\n", err)
		return
	}
	fmt.Fprintln(k.out, "Thank you for your feedback!")
	k.sleep(k.homeDelay)
}

// captureFrame owns the camera for the duration of one capture. ok is false
// once input ends.
func (k *Kiosk) captureFrame(ctx context.Context) ([]byte, bool) {
	if err := k.camera.Start(ctx); err != nil {
		k.log.WithError(err).Error("camera unavailable")
		fmt.Fprintln(k.out, "Camera is unavailable.")
		return nil, true
	}
	defer k.camera.Stop()

	if _, ok := k.readLine("Press Enter to capture... "); !ok {
		return nil, false
	}
	for i := 3; i > 0; i-- {
		fmt.Fprintf(k.out, "%d...\n", i)
		k.sleep(time.Second)
	}

	frame, err := k.camera.Frame(ctx)
	if err != nil {
		k.log.WithError(err).Error("frame capture failed")
		fmt.Fprintln(k.out, "Could not capture a photo.")
		return nil, true
	}
	k.camera.Stop()
	return frame, true
}

// captureReason collects the follow-up reason by typing or a one-shot voice
// recording. An empty reply skips the reason.
func (k *Kiosk) captureReason(ctx context.Context) (reason, reasonType string, ok bool) {
	mode, ok := k.readLine("Reply by [t]ext or [v]oice (Enter to skip): ")
	if !ok {
		return "", "", false
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "t", "text":
		line, ok := k.readLine("Your reason: ")
		if !ok {
			return "", "", false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return "", "", true
		}
		return line, "text", true
	case "v", "voice":
		text, ok := k.dictate(ctx)
		if !ok {
			return "", "", false
		}
		if text == "" {
			return "", "", true
		}
		fmt.Fprintf(k.out, "Transcript: %s\n", text)
		edited, ok := k.readLine("Edit (Enter to keep): ")
		if !ok {
			return "", "", false
		}
		if edited = strings.TrimSpace(edited); edited != "" {
			text = edited
		}
		return text, "voice", true
	default:
		return "", "", true
	}
}

func stars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
