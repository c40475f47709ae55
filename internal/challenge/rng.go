package challenge

// Rand is the randomness the state machines consume. *math/rand.Rand
// satisfies it; tests inject fixed sequences.
type Rand interface {
	Float64() float64
	Perm(n int) []int
}
