package record

import (
	"bytes"
	"testing"
)

// fakeDevice is an in-memory Device that lets tests push fragments by hand.
type fakeDevice struct {
	openErr error
	onChunk func([]byte)
	opened  bool
	closed  bool
}

func (d *fakeDevice) Open(cfg Config, onChunk func([]byte)) error {
	if d.openErr != nil {
		return d.openErr
	}
	d.opened = true
	d.onChunk = onChunk
	return nil
}

func (d *fakeDevice) Close() error {
	d.closed = true
	return nil
}

func (d *fakeDevice) emit(chunk []byte) {
	d.onChunk(chunk)
}

func TestStartTransitionsToRecording(t *testing.T) {
	r := New()
	dev := &fakeDevice{}

	if err := r.Start(dev, DefaultConfig()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if r.State() != StateRecording {
		t.Errorf("state = %v, want recording", r.State())
	}
	if !dev.opened {
		t.Error("device was not opened")
	}
}

func TestStartFailureLeavesIdle(t *testing.T) {
	r := New()
	dev := &fakeDevice{openErr: ErrPermissionDenied}

	err := r.Start(dev, DefaultConfig())
	if err != ErrPermissionDenied {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle after failed start", r.State())
	}
}

func TestStartWhileRecordingRejected(t *testing.T) {
	r := New()
	dev := &fakeDevice{}
	if err := r.Start(dev, DefaultConfig()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	second := &fakeDevice{}
	if err := r.Start(second, DefaultConfig()); err != ErrAlreadyRecording {
		t.Errorf("err = %v, want ErrAlreadyRecording", err)
	}
	if second.opened {
		t.Error("second device must not be opened")
	}
	if r.State() != StateRecording {
		t.Errorf("state = %v, want still recording", r.State())
	}
}

func TestStopConcatenatesChunksInOrder(t *testing.T) {
	r := New()
	dev := &fakeDevice{}
	if err := r.Start(dev, DefaultConfig()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	dev.emit([]byte("one-"))
	dev.emit([]byte("two-"))
	dev.emit([]byte("three"))

	payload, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}

	if !bytes.Equal(payload, []byte("one-two-three")) {
		t.Errorf("payload = %q, want fragments in arrival order", payload)
	}
	if r.State() != StateStopped {
		t.Errorf("state = %v, want stopped", r.State())
	}
	if !dev.closed {
		t.Error("device stream was not released on stop")
	}
	if r.chunks != nil {
		t.Error("chunk buffer not cleared after finalization")
	}
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	r := New()

	payload, err := r.Stop()
	if err != nil {
		t.Errorf("Stop: %v", err)
	}
	if payload != nil {
		t.Errorf("payload = %v, want nil", payload)
	}
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle unchanged", r.State())
	}
}

func TestChunksAfterStopAreDropped(t *testing.T) {
	r := New()
	dev := &fakeDevice{}
	if err := r.Start(dev, DefaultConfig()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	dev.emit([]byte("kept"))

	if _, err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	dev.emit([]byte("late"))

	if len(r.chunks) != 0 {
		t.Error("late chunk accumulated after stop")
	}
}

func TestRestartBeginsFreshSession(t *testing.T) {
	r := New()
	first := &fakeDevice{}
	if err := r.Start(first, DefaultConfig()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	first.emit([]byte("old"))
	if _, err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	second := &fakeDevice{}
	if err := r.Start(second, DefaultConfig()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	second.emit([]byte("new"))

	payload, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !bytes.Equal(payload, []byte("new")) {
		t.Errorf("payload = %q, want only the fresh session's chunks", payload)
	}
}

func TestAbortDiscardsWithoutPayload(t *testing.T) {
	r := New()
	dev := &fakeDevice{}
	if err := r.Start(dev, DefaultConfig()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	dev.emit([]byte("doomed"))

	if err := r.Abort(); err != nil {
		t.Fatalf("Abort: %v", err)
	}
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle", r.State())
	}
	if !dev.closed {
		t.Error("device stream was not released on abort")
	}
	if r.payload != nil {
		t.Error("abort must not produce a payload")
	}
}

func TestDefaultConfigConstraints(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SampleRate != 16000 || cfg.Channels != 1 {
		t.Errorf("cfg = %+v, want mono 16kHz", cfg)
	}
	if !cfg.EchoCancellation || !cfg.NoiseSuppression {
		t.Errorf("cfg = %+v, want echo cancellation and noise suppression requested", cfg)
	}
}
