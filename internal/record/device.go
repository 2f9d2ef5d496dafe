package record

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
)

// FFmpegDevice captures the system microphone by exec-ing ffmpeg and
// streaming opus-in-webm from its stdout. Echo cancellation has no ffmpeg
// capture-side equivalent and is ignored; noise suppression maps to the
// afftdn filter.
type FFmpegDevice struct {
	// Input overrides the OS-default capture source (e.g. a pulse source
	// name). Empty means the platform default.
	Input string

	mu     sync.Mutex
	cmd    *exec.Cmd
	stdout io.ReadCloser
	closed chan struct{}
}

// Open starts the capture process and begins delivering stdout reads as
// fragments. The fragment size approximates cfg.ChunkInterval at the
// configured bitrate; exact cadence is up to the pipe.
func (d *FFmpegDevice) Open(cfg Config, onChunk func([]byte)) error {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return ErrDeviceUnavailable
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cmd != nil {
		return ErrAlreadyRecording
	}

	args := captureArgs(cfg, d.Input)
	cmd := exec.Command(path, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("capture pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stdout.Close()
		return ErrDeviceUnavailable
	}

	d.cmd = cmd
	d.stdout = stdout
	d.closed = make(chan struct{})

	go func(stdout io.ReadCloser, closed chan struct{}) {
		buf := make([]byte, 4096)
		for {
			n, err := stdout.Read(buf)
			if n > 0 {
				onChunk(buf[:n])
			}
			if err != nil {
				return
			}
			select {
			case <-closed:
				return
			default:
			}
		}
	}(stdout, d.closed)

	return nil
}

// Close stops the capture process and releases the stream.
func (d *FFmpegDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cmd == nil {
		return nil
	}

	close(d.closed)
	d.stdout.Close()
	d.cmd.Process.Kill()
	err := d.cmd.Wait()

	d.cmd = nil
	d.stdout = nil
	// Kill always surfaces as an exit error; that is the expected shutdown.
	_ = err
	return nil
}

// captureArgs builds the ffmpeg invocation for the current platform,
// producing opus-in-webm on stdout.
func captureArgs(cfg Config, input string) []string {
	var args []string

	switch runtime.GOOS {
	case "darwin":
		if input == "" {
			input = ":0"
		}
		args = append(args, "-f", "avfoundation", "-i", input)
	default:
		if input == "" {
			input = "default"
		}
		args = append(args, "-f", "pulse", "-i", input)
	}

	if cfg.NoiseSuppression {
		args = append(args, "-af", "afftdn")
	}

	args = append(args,
		"-ac", strconv.Itoa(cfg.Channels),
		"-ar", strconv.Itoa(cfg.SampleRate),
		"-c:a", "libopus",
		"-b:a", "16k",
		"-f", "webm",
		"-loglevel", "quiet",
		"-",
	)
	return args
}
