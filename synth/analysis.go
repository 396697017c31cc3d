// analysis.go - Statistical and spectral summaries of rendered buffers

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package synth

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Stats captures coarse properties of a buffer, used to sanity check
// renders without comparing samples bit for bit.
type Stats struct {
	RMS           float64 // Root mean square
	Peak          float64 // Maximum absolute value
	DCOffset      float64 // Mean sample value
	ZeroCrossings int     // Sign changes between neighbouring samples
}

// Analyze computes Stats for a buffer.
func Analyze(b SampleBuffer) Stats {
	if len(b) == 0 {
		return Stats{}
	}

	var sum, sumSq, peak float64
	var crossings int
	prevSign := b[0] >= 0
	for _, v := range b {
		sum += v
		sumSq += v * v
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
		sign := v >= 0
		if sign != prevSign {
			crossings++
		}
		prevSign = sign
	}

	n := float64(len(b))
	return Stats{
		RMS:           math.Sqrt(sumSq / n),
		Peak:          peak,
		DCOffset:      sum / n,
		ZeroCrossings: crossings,
	}
}

// DominantFrequency returns the frequency in Hz of the strongest bin of
// the buffer's spectrum, ignoring DC. Resolution is SAMPLE_RATE/len(b).
func DominantFrequency(b SampleBuffer) float64 {
	if len(b) < 2 {
		return 0
	}
	spectrum := fft.FFTReal(b)

	best, bestMag := 0, 0.0
	for k := 1; k <= len(spectrum)/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	return float64(best) * SAMPLE_RATE / float64(len(b))
}
