// Package record manages the lifecycle of one audio capture session:
// idle -> recording -> stopped, accumulating device chunks and producing a
// single finalized payload on stop.
package record

import (
	"errors"
	"sync"
	"time"
)

// State is the recorder's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// Failure taxonomy for recording start. Both are user-fixable; the caller
// retries by invoking Start again, never automatically.
var (
	ErrPermissionDenied  = errors.New("microphone permission denied")
	ErrDeviceUnavailable = errors.New("capture device unavailable")
)

// ErrAlreadyRecording is returned when Start is called mid-recording.
var ErrAlreadyRecording = errors.New("recording already in progress")

// Config carries the capture constraints requested of the device.
type Config struct {
	SampleRate       int
	Channels         int
	EchoCancellation bool
	NoiseSuppression bool
	// ChunkInterval is the requested fragment emission cadence. Devices
	// treat it as a hint, not a contract.
	ChunkInterval time.Duration
}

// DefaultConfig matches the original capture constraints: mono 16kHz with
// echo cancellation and noise suppression, ~100ms fragments.
func DefaultConfig() Config {
	return Config{
		SampleRate:       16000,
		Channels:         1,
		EchoCancellation: true,
		NoiseSuppression: true,
		ChunkInterval:    100 * time.Millisecond,
	}
}

// Device is a microphone capture source. Open begins delivering binary
// fragments to onChunk until Close releases the underlying stream.
type Device interface {
	Open(cfg Config, onChunk func([]byte)) error
	Close() error
}

// Recorder owns exactly one capture session at a time. The mutex covers the
// chunk buffer, which the device feeds from its own goroutine.
type Recorder struct {
	mu      sync.Mutex
	state   State
	device  Device
	chunks  [][]byte
	payload []byte
}

// New returns an idle recorder.
func New() *Recorder {
	return &Recorder{}
}

// Start opens the device and begins accumulating fragments. On failure the
// state remains idle and the device error is returned unchanged. Starting
// from the stopped state begins a fresh session.
func (r *Recorder) Start(dev Device, cfg Config) error {
	r.mu.Lock()
	if r.state == StateRecording {
		r.mu.Unlock()
		return ErrAlreadyRecording
	}
	r.chunks = nil
	r.payload = nil
	r.mu.Unlock()

	if err := dev.Open(cfg, r.addChunk); err != nil {
		return err
	}

	r.mu.Lock()
	r.device = dev
	r.state = StateRecording
	r.mu.Unlock()
	return nil
}

// addChunk appends one device fragment in arrival order. Fragments arriving
// after finalization are dropped.
func (r *Recorder) addChunk(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRecording {
		return
	}
	buf := make([]byte, len(chunk))
	copy(buf, chunk)
	r.chunks = append(r.chunks, buf)
}

// Stop finalizes the session: the device stream is released, the fragments
// are concatenated in arrival order into the single payload, and the chunk
// buffer is cleared. Stop outside of recording is a no-op returning nil.
func (r *Recorder) Stop() ([]byte, error) {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return nil, nil
	}
	dev := r.device
	r.mu.Unlock()

	err := dev.Close()

	r.mu.Lock()
	defer r.mu.Unlock()

	var size int
	for _, c := range r.chunks {
		size += len(c)
	}
	payload := make([]byte, 0, size)
	for _, c := range r.chunks {
		payload = append(payload, c...)
	}

	r.payload = payload
	r.chunks = nil
	r.device = nil
	r.state = StateStopped
	return payload, err
}

// Abort releases the device and discards all accumulated fragments without
// producing a payload. Used on teardown while a recording is in progress.
func (r *Recorder) Abort() error {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return nil
	}
	dev := r.device
	r.mu.Unlock()

	err := dev.Close()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.chunks = nil
	r.device = nil
	r.state = StateIdle
	return err
}

// State returns the recorder's current lifecycle state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Recording reports whether a capture session is active.
func (r *Recorder) Recording() bool {
	return r.State() == StateRecording
}
