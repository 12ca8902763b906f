// Package numerics provides small, pure statistics helpers shared by the
// analysis layer. All functions are free functions over float64 slices;
// none of them mutate their input.
package numerics

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of data, or 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// PopStdDev returns the population standard deviation of data (divisor N,
// not N-1), or 0 for an empty slice.
func PopStdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.PopStdDev(data, nil)
}

// PercentChange returns the relative change from base to value, in
// percent. base must be non-zero; callers guard.
func PercentChange(value, base float64) float64 {
	return (value - base) / base * 100
}
