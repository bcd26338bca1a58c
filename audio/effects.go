package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// SoundType identifies one of the race cues
type SoundType int

const (
	SoundStart SoundType = iota
	SoundFinish
	SoundComplete
)

// String returns the cue name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundFinish:
		return "finish"
	case SoundComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Start bell: two struck partials
const (
	startBellFreq     = 659.25 // E5
	startBellDuration = 700 * time.Millisecond
	startBellAttack   = 5 * time.Millisecond
	startBellRelease  = 650 * time.Millisecond
	startBellOvertone = 250 * time.Millisecond
)

// Finish chime, one per finisher, a whole tone lower for every rank after first
const (
	finishChimeFreq     = 1046.50 // C6
	finishChimeDuration = 180 * time.Millisecond
	finishChimeAttack   = 3 * time.Millisecond
	finishChimeRelease  = 140 * time.Millisecond
	finishChimeStep     = 2.0 // semitones per rank
)

// Completion fanfare
const (
	fanfareNoteDuration = 140 * time.Millisecond
	fanfareLastDuration = 420 * time.Millisecond
	fanfareAttack       = 5 * time.Millisecond
	fanfareRelease      = 60 * time.Millisecond
	fanfareLastRelease  = 350 * time.Millisecond
)

// fanfareNotes is C5 E5 G5 C6
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator of the given wave shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   start,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= e.releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateStartBell generates the bell rung when the race starts
func CreateStartBell(rate beep.SampleRate, vol float64) beep.Streamer {
	fund := tone(startBellFreq, WaveSine, startBellDuration, startBellAttack, startBellRelease, rate)
	over := tone(startBellFreq*2, WaveSine, startBellDuration, startBellAttack, startBellOvertone, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(beep.Take(rate.N(startBellDuration), mixed), vol)
}

// FinishChimeFreq returns the chime pitch for a finishing rank (1-based)
func FinishChimeFreq(rank int) float64 {
	if rank < 1 {
		rank = 1
	}
	return finishChimeFreq * math.Pow(2, -finishChimeStep*float64(rank-1)/12)
}

// CreateFinishChime generates the short chime played as an actor crosses the line
func CreateFinishChime(rate beep.SampleRate, rank int, vol float64) beep.Streamer {
	chime := tone(FinishChimeFreq(rank), WaveTriangle, finishChimeDuration, finishChimeAttack, finishChimeRelease, rate)
	return newVolume(chime, vol)
}

// CreateFanfare generates the arpeggio played when every actor has finished
func CreateFanfare(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, freq := range fanfareNotes {
		d, rel := fanfareNoteDuration, fanfareRelease
		if i == len(fanfareNotes)-1 {
			d, rel = fanfareLastDuration, fanfareLastRelease
		}
		notes = append(notes, tone(freq, WaveSquare, d, fanfareAttack, rel, rate))
	}
	// Square waves are loud next to the sine bell
	return newVolume(beep.Seq(notes...), vol*0.35)
}

// GetSoundEffect returns the streamer for the given cue; rank only affects SoundFinish
func GetSoundEffect(sound SoundType, rank int, rate beep.SampleRate, vol float64) beep.Streamer {
	switch sound {
	case SoundStart:
		return CreateStartBell(rate, vol)
	case SoundFinish:
		return CreateFinishChime(rate, rank, vol)
	case SoundComplete:
		return CreateFanfare(rate, vol)
	default:
		return nil
	}
}
