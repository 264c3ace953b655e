package secondary

// NumberSource defines the interface for drawing random integers.
type NumberSource interface {
	// IntN returns a uniformly distributed integer in [0, n). n must be positive.
	IntN(n int) int
}
