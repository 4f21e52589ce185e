package tinymt64_test

import (
	"math/rand"

	"github.com/renproject/tinymt64"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Source", func() {
	It("should expose the core sequence through Uint64", func() {
		src := tinymt64.NewSource(42)
		ref := tinymt64.NewFromSeed(42)

		for i := 0; i < 1000; i++ {
			Expect(src.Uint64()).To(Equal(ref.Uint64()))
		}
	})

	It("should derive Int63 from the top bits of the sequence", func() {
		src := tinymt64.NewSource(42)
		want := []int64{6052311796157198550, 4410965746786704985, 550223589996578274}

		for _, w := range want {
			got := src.Int63()
			Expect(got).To(BeNumerically(">=", 0))
			Expect(got).To(Equal(w))
		}
	})

	It("should share the sequence with the wrapped generator", func() {
		rng := tinymt64.NewFromSeed(7)
		ref := tinymt64.NewFromSeed(7)
		src := tinymt64.NewSourceFromRng(rng)

		Expect(src.Uint64()).To(Equal(ref.Uint64()))
		Expect(rng.Uint64()).To(Equal(ref.Uint64()))
	})

	It("should reseed by sign folding", func() {
		src := tinymt64.NewSource(0)
		src.Seed(-1)

		ref := tinymt64.NewFromSeed(^uint64(0))
		Expect(src.Uint64()).To(Equal(ref.Uint64()))
	})

	It("should drive the math/rand distribution surface", func() {
		r := rand.New(tinymt64.NewSource(1))

		perm := r.Perm(100)
		seen := make([]bool, 100)
		for _, p := range perm {
			Expect(seen[p]).To(BeFalse())
			seen[p] = true
		}

		for i := 0; i < 1000; i++ {
			Expect(r.Intn(10)).To(BeNumerically("<", 10))
		}
	})
})
