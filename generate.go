package tinymt64

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Reciprocal of 2^53, used to map the top 53 bits of an output word onto
// [0, 1).
const toFloat64 = 1.0 / 9007199254740992.0

// nextState advances the state by one step. It is the sole state-advancing
// operation; every output request performs exactly one transition before
// tempering.
func (rng *Rng) nextState() {
	rng.status0 &= mask
	x := rng.status0 ^ rng.status1
	x ^= x << sh0
	x ^= x >> 32
	x ^= x << 32
	x ^= x << sh1
	rng.status0 = rng.status1
	rng.status1 = x
	if x&1 != 0 {
		rng.status0 ^= uint64(rng.mat1)
		rng.status1 ^= uint64(rng.mat2) << 32
	}
}

// temper derives a 64-bit output from the current state without advancing it.
func (rng *Rng) temper() uint64 {
	x := rng.status0 + rng.status1
	x ^= rng.status0 >> sh8
	if x&1 != 0 {
		x ^= rng.tmat
	}
	return x
}

// temperConv derives a float64 in [1, 2) from the current state by placing 52
// tempered bits directly in the mantissa of an IEEE-754 double with a fixed
// exponent.
func (rng *Rng) temperConv() float64 {
	x := rng.status0 + rng.status1
	x ^= rng.status0 >> sh8
	var u uint64
	if x&1 != 0 {
		u = ((x ^ rng.tmat) >> 12) | 0x3ff0000000000000
	} else {
		u = (x >> 12) | 0x3ff0000000000000
	}
	return math.Float64frombits(u)
}

// temperConvOpen is temperConv with the lowest mantissa bit forced to 1, so
// the result can never be exactly 1.0.
func (rng *Rng) temperConvOpen() float64 {
	x := rng.status0 + rng.status1
	x ^= rng.status0 >> sh8
	var u uint64
	if x&1 != 0 {
		u = ((x ^ rng.tmat) >> 12) | 0x3ff0000000000001
	} else {
		u = (x >> 12) | 0x3ff0000000000001
	}
	return math.Float64frombits(u)
}

// Uint64 returns the next 64-bit value in the sequence.
func (rng *Rng) Uint64() uint64 {
	rng.nextState()
	return rng.temper()
}

// Float64 returns the next value as a float64 in [0, 1), using the top 53
// bits of the underlying 64-bit output.
func (rng *Rng) Float64() float64 {
	rng.nextState()
	return float64(rng.temper()>>11) * toFloat64
}

// Float64CO returns the next value as a float64 in [0, 1), using the
// mantissa conversion rather than the 53-bit shift. The sequence differs from
// Float64 in the low bits.
func (rng *Rng) Float64CO() float64 {
	rng.nextState()
	return rng.temperConv() - 1.0
}

// Float6412 returns the next value as a float64 in [1, 2).
func (rng *Rng) Float6412() float64 {
	rng.nextState()
	return rng.temperConv()
}

// Float64OC returns the next value as a float64 in (0, 1].
func (rng *Rng) Float64OC() float64 {
	rng.nextState()
	return 2.0 - rng.temperConv()
}

// Float64OO returns the next value as a float64 in (0, 1): it is never
// exactly 0.0 and never exactly 1.0.
func (rng *Rng) Float64OO() float64 {
	rng.nextState()
	return rng.temperConvOpen() - 1.0
}

// Int31 returns the low 31 bits of the next 64-bit value, a non-negative
// int32 in [0, 2^31 - 1].
func (rng *Rng) Int31() int32 {
	return int32(rng.Uint64() & 0x7fffffff)
}

// Int31n returns a value in [0, max). It returns an error if max is negative;
// max == 0 is degenerate and yields 0. The state is not advanced when an
// error is returned.
//
// The value is derived by truncating Float64()*max rather than by modular
// reduction of the raw output. This matches the reference behaviour and is
// required for sequence compatibility, even though it is slightly biased for
// large ranges.
func (rng *Rng) Int31n(max int32) (int32, error) {
	if max < 0 {
		return 0, fmt.Errorf("upper bound must be non-negative, got %v", max)
	}
	return int32(rng.Float64() * float64(max)), nil
}

// Int31Range returns a value in [min, max). It returns an error if min > max;
// min == max is degenerate and yields min. The state is not advanced when an
// error is returned.
func (rng *Rng) Int31Range(min, max int32) (int32, error) {
	if min > max {
		return 0, fmt.Errorf("invalid range [%v, %v)", min, max)
	}
	diff := int64(max) - int64(min)
	return int32(int64(min) + int64(rng.Float64()*float64(diff))), nil
}

// Read fills p with random bytes and returns len(p). One 64-bit value is
// consumed per 8 bytes, written least significant byte first; a final partial
// word is truncated to the remaining length. It returns an error if p is nil,
// without advancing the state.
//
// Read never fails for a non-nil buffer, so it satisfies io.Reader with an
// always-nil error in that case.
func (rng *Rng) Read(p []byte) (int, error) {
	if p == nil {
		return 0, errors.New("destination buffer is nil")
	}

	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, rng.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		x := rng.Uint64()
		for i := range p {
			p[i] = byte(x)
			x >>= 8
		}
	}

	return n, nil
}
