package fractals

import "cmp"

// Clamp limits cur to [low, high]. The bounds may be given in either order.
func Clamp[T cmp.Ordered](cur, low, high T) T {
	if low > high {
		low, high = high, low
	}
	return min(max(cur, low), high)
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// Remap maps x from the range [inMin, inMax] onto [outMin, outMax].
// The output range may be reversed to flip an axis.
func Remap(x, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (x-inMin)*(outMax-outMin)/(inMax-inMin)
}
