package kiosk

import (
	"context"
	"fmt"
	"strings"
)

// VoiceFeedback runs the dictated feedback flow. The customer records a
// message, may edit the transcript, and the accuracy of the final text
// against the original dictation is shown after submission.
func (k *Kiosk) VoiceFeedback(ctx context.Context) {
	categories, products := k.referenceData(ctx)

	category, ok := k.selectOption("category", categories)
	if !ok {
		return
	}
	product, ok := k.selectOption("product", products)
	if !ok {
		return
	}

	original, ok := k.dictate(ctx)
	if !ok {
		return
	}

	final := original
	if original != "" {
		fmt.Fprintf(k.out, "Transcript: %s\n", original)
		edited, ok := k.readLine("Edit (Enter to keep): ")
		if !ok {
			return
		}
		if edited = strings.TrimSpace(edited); edited != "" {
			final = edited
		}
	}

	if final == "" || category == "" || product == "" {
		fmt.Fprintln(k.out, "Please complete all fields (speech, category, product).")
		return
	}

	suggestion, err := k.backend.SubmitVoiceFeedback(ctx, final, category, product)
	if err != nil {
		k.log.WithError(err).Error("voice feedback submission failed")
		fmt.Fprintf(k.out, "Could not submit your feedback: %v\n", err)
		return
	}

	fmt.Fprintln(k.out, "Thank you for your feedback!")
	if suggestion != "" {
		fmt.Fprintf(k.out, "Suggestion for us: %s\n", suggestion)
	}
	fmt.Fprintf(k.out, "Transcription accuracy: %.2f%%\n", Accuracy(original, final))
	k.sleep(k.homeDelay)
}

// dictate records between two Enter presses and transcribes the audio. The
// microphone is released as soon as recording stops, before any network
// call. ok is false once input ends.
func (k *Kiosk) dictate(ctx context.Context) (string, bool) {
	if _, ok := k.readLine("Press Enter to start recording... "); !ok {
		return "", false
	}
	if err := k.recorder.Start(ctx); err != nil {
		k.log.WithError(err).Error("microphone unavailable")
		fmt.Fprintln(k.out, "Microphone is unavailable.")
		return "", true
	}
	if _, ok := k.readLine("Recording. Press Enter to stop... "); !ok {
		k.recorder.Stop()
		return "", false
	}
	audio, err := k.recorder.Stop()
	if err != nil {
		k.log.WithError(err).Error("recording failed")
		fmt.Fprintln(k.out, "Recording failed.")
		return "", true
	}

	text, err := k.transcriber.Transcribe(ctx, audio)
	if err != nil {
		k.log.WithError(err).Error("transcription failed")
		fmt.Fprintln(k.out, "Could not transcribe your recording.")
		return "", true
	}
	return strings.TrimSpace(text), true
}
