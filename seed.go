package tinymt64

// Seeding follows the reference implementation by Saito and Matsumoto
// (tinymt64.c). Both algorithms end with period certification, so a freshly
// seeded generator can never sit on the all-zero fixed point of the state
// transition.

// Seed reinitialises the generator in place from a single 64-bit value,
// discarding the current sequence position. The parameters are kept.
func (rng *Rng) Seed(seed uint64) {
	rng.status0 = seed ^ (uint64(rng.mat1) << 32)
	rng.status1 = uint64(rng.mat2) ^ rng.tmat

	// LCG-style avalanche so that low-entropy seeds still spread over both
	// status words.
	status := [2]uint64{rng.status0, rng.status1}
	for i := uint64(1); i < minLoop; i++ {
		status[i&1] ^= i + 6364136223846793005*(status[(i-1)&1]^(status[(i-1)&1]>>62))
	}
	rng.status0 = status[0]
	rng.status1 = status[1]

	rng.periodCertification()
}

// SeedFromKey reinitialises the generator in place from an arbitrary-length
// key of 64-bit words, discarding the current sequence position. The whole key
// participates in the mixed state regardless of its length. An empty key is
// valid and equivalent to mixing no key material.
func (rng *Rng) SeedFromKey(key []uint64) {
	const (
		lag  = 1
		mid  = 1
		size = 4
	)

	st := [size]uint64{0, uint64(rng.mat1), uint64(rng.mat2), rng.tmat}

	count := uint64(len(key)) + 1
	if count < minLoop {
		count = minLoop
	}

	r := iniFunc1(st[0] ^ st[mid%size] ^ st[(size-1)%size])
	st[mid%size] += r
	r += uint64(len(key))
	st[(mid+lag)%size] += r
	st[0] = r
	count--

	i := uint64(1)
	j := uint64(0)
	for ; j < count && j < uint64(len(key)); j++ {
		r = iniFunc1(st[i] ^ st[(i+mid)%size] ^ st[(i+size-1)%size])
		st[(i+mid)%size] += r
		r += key[j] + i
		st[(i+mid+lag)%size] += r
		st[i] = r
		i = (i + 1) % size
	}
	for ; j < count; j++ {
		r = iniFunc1(st[i] ^ st[(i+mid)%size] ^ st[(i+size-1)%size])
		st[(i+mid)%size] += r
		r += i
		st[(i+mid+lag)%size] += r
		st[i] = r
		i = (i + 1) % size
	}
	for j = 0; j < size; j++ {
		r = iniFunc2(st[i] + st[(i+mid)%size] + st[(i+size-1)%size])
		st[(i+mid)%size] ^= r
		r -= i
		st[(i+mid+lag)%size] ^= r
		st[i] = r
		i = (i + 1) % size
	}

	rng.status0 = st[0] ^ st[1]
	rng.status1 = st[2] ^ st[3]

	rng.periodCertification()
}

func iniFunc1(x uint64) uint64 {
	return (x ^ (x >> 59)) * 2173292883993
}

func iniFunc2(x uint64) uint64 {
	return (x ^ (x >> 59)) * 58885565329898161
}

// periodCertification rewrites the masked all-zero state, which is a fixed
// point of the transition, to a fixed non-zero sentinel.
func (rng *Rng) periodCertification() {
	if rng.status0&mask == 0 && rng.status1 == 0 {
		rng.status0 = 'T'
		rng.status1 = 'M'
	}
}
