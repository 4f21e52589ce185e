package tinymt64_test

import (
	"github.com/renproject/surge"
	"github.com/renproject/tinymt64"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("state serialisation", func() {
	It("should restore the exact sequence position", func() {
		rng := tinymt64.NewFromSeed(1)
		for i := 0; i < 123; i++ {
			rng.Uint64()
		}

		bs, err := surge.ToBinary(rng)
		Expect(err).ToNot(HaveOccurred())

		restored := &tinymt64.Rng{}
		Expect(surge.FromBinary(restored, bs)).To(Succeed())

		for i := 0; i < 1000; i++ {
			Expect(restored.Uint64()).To(Equal(rng.Uint64()))
		}
	})

	It("should carry the parameters", func() {
		params := tinymt64.Params{Mat1: 0x8f7011ee, Mat2: 0xfc78ff1f, Tmat: 0x3793fdff}
		rng := tinymt64.NewWithParams(params, 9)

		bs, err := surge.ToBinary(rng)
		Expect(err).ToNot(HaveOccurred())

		restored := &tinymt64.Rng{}
		Expect(surge.FromBinary(restored, bs)).To(Succeed())
		Expect(restored.Params()).To(Equal(params))
	})

	It("should marshal to a fixed size", func() {
		rng := tinymt64.NewFromSeed(1)
		Expect(rng.SizeHint()).To(Equal(32))

		bs, err := surge.ToBinary(rng)
		Expect(err).ToNot(HaveOccurred())
		Expect(bs).To(HaveLen(32))
	})

	It("should reject a truncated encoding", func() {
		rng := tinymt64.NewFromSeed(1)
		bs, err := surge.ToBinary(rng)
		Expect(err).ToNot(HaveOccurred())

		restored := &tinymt64.Rng{}
		Expect(surge.FromBinary(restored, bs[:len(bs)-1])).ToNot(Succeed())
	})
})
