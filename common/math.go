package common

// Lerp linearly interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
