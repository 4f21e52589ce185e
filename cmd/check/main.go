package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/renproject/tinymt64"
)

// Prints the check output for the default parameter set in the format of the
// reference distribution's check64 program, so the output can be diffed
// directly against check64.out.

func main() {
	seed := uint64(1)

	if len(os.Args) > 2 {
		fmt.Printf("expected %v [seed]\n", os.Args[0])
		return
	}
	if len(os.Args) == 2 {
		parsed, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil {
			panic(fmt.Sprintf("unexpected seed %q: %v", os.Args[1], err))
		}
		seed = parsed
	}

	params := tinymt64.DefaultParams()
	fmt.Printf("tinymt64 0x%08x 0x%08x 0x%016x seed = %v\n", params.Mat1, params.Mat2, params.Tmat, seed)

	rng := tinymt64.NewWithParams(params, seed)

	fmt.Println("64-bit unsigned integers r, where 0 <= r < 2^64")
	for i := 0; i < 15; i++ {
		fmt.Printf("%20v ", rng.Uint64())
		if i%3 == 2 {
			fmt.Println()
		}
	}

	fmt.Println("double numbers r, where 0.0 <= r < 1.0")
	for i := 0; i < 12; i++ {
		fmt.Printf("%.15f ", rng.Float64())
		if i%4 == 3 {
			fmt.Println()
		}
	}
}
