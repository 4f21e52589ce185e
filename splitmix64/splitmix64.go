// Package splitmix64 implements the splitmix64 mixing function, used to
// condition weak seed material before it reaches a generator.
package splitmix64

const increment = 0x9e3779b97f4a7c15

// Next advances the state by the Weyl increment and returns the mixed output.
func Next(state *uint64) uint64 {
	*state += increment
	return Mix(*state)
}

// Mix applies the splitmix64 finaliser to a single word.
func Mix(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
