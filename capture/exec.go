package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Default grabber commands. Both templates receive the output path.
const (
	defaultCameraCmd   = "fswebcam -q --no-banner --jpeg 90 %s"
	defaultRecorderCmd = "arecord -q -f cd -t wav %s"
)

// ExecCamera shells out to a frame-grabber command for each capture.
type ExecCamera struct {
	command string
	started bool
}

// NewExecCamera builds a camera around the given command template; empty
// selects the fswebcam default.
func NewExecCamera(command string) *ExecCamera {
	if command == "" {
		command = defaultCameraCmd
	}
	return &ExecCamera{command: command}
}

func (c *ExecCamera) Start(ctx context.Context) error {
	bin := strings.Fields(c.command)[0]
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("camera command %q not available: %w", bin, err)
	}
	c.started = true
	return nil
}

func (c *ExecCamera) Frame(ctx context.Context) ([]byte, error) {
	if !c.started {
		return nil, fmt.Errorf("camera not started")
	}
	dir, err := os.MkdirTemp("", "kiosk-frame-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "frame.jpg")
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", fmt.Sprintf(c.command, path))
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("frame capture failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return os.ReadFile(path)
}

func (c *ExecCamera) Stop() {
	c.started = false
}

// ExecRecorder shells out to an audio recorder that writes a WAV file until
// interrupted.
type ExecRecorder struct {
	command string
	cmd     *exec.Cmd
	path    string
	dir     string
}

// NewExecRecorder builds a recorder around the given command template; empty
// selects the arecord default.
func NewExecRecorder(command string) *ExecRecorder {
	if command == "" {
		command = defaultRecorderCmd
	}
	return &ExecRecorder{command: command}
}

func (r *ExecRecorder) Start(ctx context.Context) error {
	if r.cmd != nil {
		return fmt.Errorf("recorder already running")
	}
	dir, err := os.MkdirTemp("", "kiosk-audio-")
	if err != nil {
		return err
	}
	r.dir = dir
	r.path = filepath.Join(dir, "recording.wav")

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", fmt.Sprintf(r.command, r.path))
	if err := cmd.Start(); err != nil {
		os.RemoveAll(dir)
		r.dir = ""
		return fmt.Errorf("failed to start recorder: %w", err)
	}
	r.cmd = cmd
	return nil
}

func (r *ExecRecorder) Stop() ([]byte, error) {
	if r.cmd == nil {
		return nil, fmt.Errorf("recorder not running")
	}
	defer func() {
		os.RemoveAll(r.dir)
		r.cmd = nil
		r.dir = ""
	}()

	// The recorder finishes the WAV header on SIGINT.
	if err := r.cmd.Process.Signal(os.Interrupt); err != nil {
		r.cmd.Process.Kill()
	}
	r.cmd.Wait()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("no recording produced: %w", err)
	}
	return data, nil
}
