package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

// drainPad is how long the engine keeps the device running after the last
// sample is queued, so the period buffers empty before teardown.
const drainPad = 150 * time.Millisecond

// Engine plays 16-bit PCM WAV files through a miniaudio playback device.
// It exists for hosts without a command-line player; anything it cannot
// decode is skipped rather than surfaced, matching the cue policy that a
// missing sound is never an error worth reporting.
type Engine struct{}

// Play decodes the WAV file at path and feeds it to a playback device,
// blocking until the samples have drained.
func (e *Engine) Play(path string) error {
	if ValidateFile(path) == "" {
		return nil
	}

	w, err := decodeWAVFile(path)
	if err != nil {
		return nil
	}
	if w.formatCode != pcmFormatCode || w.bitsPerSample != 16 {
		return nil
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(string) {})
	if err != nil {
		return fmt.Errorf("initializing audio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.SampleRate = w.sampleRate
	cfg.Playback.Format = malgo.FormatS16
	cfg.Playback.Channels = uint32(w.channels)
	cfg.Alsa.NoMMap = 1

	var (
		offset int
		once   sync.Once
		done   = make(chan struct{})
	)
	onData := func(pOutput, _ []byte, frameCount uint32) {
		if offset >= len(w.pcm) {
			once.Do(func() { close(done) })
			return
		}
		n := copy(pOutput, w.pcm[offset:])
		offset += n
		if offset >= len(w.pcm) {
			once.Do(func() { close(done) })
		}
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, malgo.DeviceCallbacks{Data: onData})
	if err != nil {
		return fmt.Errorf("initializing playback device: %w", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return fmt.Errorf("starting playback device: %w", err)
	}

	<-done
	time.Sleep(drainPad)
	return nil
}

// Available reports true; device init failures surface at play time.
func (e *Engine) Available() bool { return true }
