// Package capture defines the media capabilities the kiosk flows depend on.
// The browser frontend leaned on ambient globals (getUserMedia,
// SpeechRecognition, MediaRecorder); here each device is an explicitly owned
// object with an acquire → use → release lifecycle so the flows can be
// exercised without real hardware.
package capture

import "context"

// Camera produces JPEG still frames.
type Camera interface {
	// Start acquires the device.
	Start(ctx context.Context) error
	// Frame captures a single JPEG frame.
	Frame(ctx context.Context) ([]byte, error)
	// Stop releases the device. Safe to call more than once.
	Stop()
}

// Recorder captures microphone audio between Start and Stop.
type Recorder interface {
	Start(ctx context.Context) error
	// Stop ends the recording and returns the captured WAV audio.
	Stop() ([]byte, error)
}

// Transcriber converts recorded audio to text. The voice flow uses it for
// the continuous dictation session; the emotion flow reuses it for one-shot
// reason capture.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
