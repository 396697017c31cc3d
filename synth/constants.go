// constants.go - Synthesis constants shared by every note builder

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

const (
	SAMPLE_RATE = 44100 // Samples per second for every buffer this package produces

	SEMITONES_PER_OCTAVE = 12
	REFERENCE_OCTAVE     = 4 // Octave number of middle C

	MIDDLE_C_HZ = 261.63 // Root of the harmonic and piano note families
	A4_HZ       = 440.0  // Root of the simple single-tone family

	A4_FROM_MIDDLE_C = 9 // Semitones from C4 up to A4
)

// Harmonic note blend. The outer pair mixes the fundamental against the
// octave pair, the inner pair mixes octave-up against octave-down.
const (
	HARMONIC_FUNDAMENTAL_WEIGHT = 0.75
	HARMONIC_OCTAVES_WEIGHT     = 0.25
	HARMONIC_HI_WEIGHT          = 0.5
	HARMONIC_LO_WEIGHT          = 0.5
)

// Piano note shaping
const (
	DECAY_RATE = 0.0004 // Multiplies the per-sample phase inside exp(-x)

	OVERTONE_ROOT_WEIGHT  = 0.9
	OVERTONE_BLEND_WEIGHT = 0.1

	SATURATION_DRY_WEIGHT  = 0.5
	SATURATION_CUBE_WEIGHT = 0.5

	DEFAULT_OVERTONES = 4
)

const CHROMATIC_NOTES = 12 // Notes in one chromatic run
