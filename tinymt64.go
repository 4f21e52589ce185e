// Package tinymt64 implements the TinyMT64 pseudorandom number generator, a
// small-state variant of the Mersenne Twister with a period of 2^127 - 1.
//
// http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/TINYMT/
//
// TinyMT64 is not cryptographically secure: given enough outputs the remaining
// sequence can be predicted without knowing the seed. It is a statistical
// generator whose value is bit-for-bit reproducibility of the reference
// sequence across implementations and platforms.
package tinymt64

import (
	"time"

	"github.com/renproject/tinymt64/splitmix64"
)

// Mexp is the Mersenne exponent of the generator: the internal state is 127
// bits wide and the period of the output sequence is 2^127 - 1.
const Mexp = 127

const (
	mask = uint64(0x7fffffffffffffff)

	sh0 = 12
	sh1 = 11
	sh8 = 8

	minLoop = 8
)

// Params are the tuning parameters of a generator instance. They control the
// feedback of the state transition (Mat1, Mat2) and the bit substitution of
// the temper step (Tmat). They are fixed for the lifetime of an Rng and do not
// change as the sequence advances.
//
// Parameter sets are not interchangeable: two generators seeded identically
// but with different parameters produce unrelated sequences.
type Params struct {
	Mat1 uint32
	Mat2 uint32
	Tmat uint64
}

// DefaultParams returns the parameter set used by the reference distribution's
// check program. The known-answer vectors published for TinyMT64 are produced
// with these values.
func DefaultParams() Params {
	return Params{
		Mat1: 0xfa051f40,
		Mat2: 0xffd0fff4,
		Tmat: 0x58d02ffeffbfffbc,
	}
}

// Rng is a TinyMT64 generator. The two status words hold the 127-bit internal
// state (the top bit of status0 is masked off by the transition function).
//
// An Rng is a single-owner mutable value: every output request both reads and
// writes the status words, so it must not be shared between goroutines without
// external synchronisation. Callers that need parallel generation should use
// independent, separately seeded instances.
type Rng struct {
	status0 uint64
	status1 uint64

	mat1 uint32
	mat2 uint32
	tmat uint64
}

// EntropySource supplies seed material for generators constructed without an
// explicit seed. Substituting a fixed source makes unseeded construction
// deterministic in tests.
type EntropySource func() uint64

// TimeEntropy is the default EntropySource. It conditions the current time
// through splitmix64 so that generators constructed in quick succession do not
// receive nearly identical seeds.
func TimeEntropy() uint64 {
	state := uint64(time.Now().UnixNano())
	return splitmix64.Next(&state)
}

// New returns a generator with the default parameters, seeded from
// TimeEntropy. Determinism is per-seed only: two generators constructed this
// way are unrelated.
func New() *Rng {
	return NewWithEntropy(TimeEntropy)
}

// NewWithEntropy returns a generator with the default parameters, seeded with
// one draw from the given entropy source.
func NewWithEntropy(entropy EntropySource) *Rng {
	return NewFromSeed(entropy())
}

// NewFromSeed returns a generator with the default parameters, deterministically
// seeded from a single 64-bit value.
func NewFromSeed(seed uint64) *Rng {
	return NewWithParams(DefaultParams(), seed)
}

// NewWithParams returns a generator with the given parameters, deterministically
// seeded from a single 64-bit value.
func NewWithParams(params Params, seed uint64) *Rng {
	rng := &Rng{mat1: params.Mat1, mat2: params.Mat2, tmat: params.Tmat}
	rng.Seed(seed)
	return rng
}

// NewFromKey returns a generator with the default parameters, deterministically
// seeded from an arbitrary-length key of 64-bit words.
func NewFromKey(key []uint64) *Rng {
	return NewFromKeyWithParams(DefaultParams(), key)
}

// NewFromKeyWithParams returns a generator with the given parameters,
// deterministically seeded from an arbitrary-length key of 64-bit words.
func NewFromKeyWithParams(params Params, key []uint64) *Rng {
	rng := &Rng{mat1: params.Mat1, mat2: params.Mat2, tmat: params.Tmat}
	rng.SeedFromKey(key)
	return rng
}

// Params returns the parameter set the generator was constructed with.
func (rng *Rng) Params() Params {
	return Params{Mat1: rng.mat1, Mat2: rng.mat2, Tmat: rng.tmat}
}

// StateExponent returns Mexp, identifying the period class 2^127 - 1 of the
// generator. It has no side effect on the state.
func (rng *Rng) StateExponent() int {
	return Mexp
}
