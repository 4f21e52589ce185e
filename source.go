package tinymt64

import "math/rand"

// Source adapts an Rng to math/rand, so the full rand.Rand distribution
// surface (Perm, Shuffle, NormFloat64, ...) can run on a TinyMT64 sequence.
type Source struct {
	rng *Rng
}

var (
	_ rand.Source   = (*Source)(nil)
	_ rand.Source64 = (*Source)(nil)
)

// NewSource returns a rand.Source64 with the default parameters, seeded by
// sign-folding the given value.
func NewSource(seed int64) *Source {
	return &Source{rng: NewFromSeed(uint64(seed))}
}

// NewSourceFromRng returns a rand.Source64 drawing from an existing
// generator. The generator remains usable directly; draws through either
// handle advance the same sequence.
func NewSourceFromRng(rng *Rng) *Source {
	return &Source{rng: rng}
}

// Seed reseeds the underlying generator by sign-folding the given value.
func (src *Source) Seed(seed int64) {
	src.rng.Seed(uint64(seed))
}

// Uint64 returns the next 64-bit value in the sequence.
func (src *Source) Uint64() uint64 {
	return src.rng.Uint64()
}

// Int63 returns the top 63 bits of the next value as a non-negative int64.
func (src *Source) Int63() int64 {
	return int64(src.rng.Uint64() >> 1)
}
