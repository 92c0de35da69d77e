package gui

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-slayin/internal/games/slayin"
)

const sampleRate = beep.SampleRate(48000)

// cue is one short notification sound.
type cue struct {
	freq     float64
	duration time.Duration
}

var (
	hitCue    = cue{freq: 140, duration: 150 * time.Millisecond}
	healCue   = cue{freq: 880, duration: 120 * time.Millisecond}
	slainCue  = cue{freq: 520, duration: 60 * time.Millisecond}
	endingCue = cue{freq: 98, duration: 500 * time.Millisecond}
)

// ToneSink plays a short tone for each session notification.
type ToneSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

var _ slayin.EventSink = (*ToneSink)(nil)

// NewToneSink creates a silent sink; call Init to open the audio device.
func NewToneSink() *ToneSink {
	return &ToneSink{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Without a device it returns an error and the sink
// stays silent.
func (t *ToneSink) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(t.mixer)
	t.initialized = true
	return nil
}

// Close stops all sounds.
func (t *ToneSink) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	speaker.Lock()
	t.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	t.initialized = false
}

func (t *ToneSink) Hit(int)                   { t.play(hitCue) }
func (t *ToneSink) Healed(int)                { t.play(healCue) }
func (t *ToneSink) Slain(int)                 { t.play(slainCue) }
func (t *ToneSink) SessionEnded(float64, int) { t.play(endingCue) }

func (t *ToneSink) play(c cue) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	speaker.Lock()
	t.mixer.Add(beep.Take(sampleRate.N(c.duration), newTone(sampleRate, c.freq, c.duration)))
	speaker.Unlock()
}

// tone is a sine wave with a linear fade out.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{sr: sr, freq: freq, total: max(sr.N(d), 1)}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		fade := 1 - math.Min(float64(g.pos)/float64(g.total), 1)
		v := 0.2 * fade * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
