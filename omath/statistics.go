package omath

import "math"

// Sum ...
func Sum(nums []float64) (result float64) {
	for _, v := range nums {
		result += v
	}
	return result
}

// Mean ...
func Mean(nums []float64) float64 {
	count := float64(len(nums))
	if count == 0 {
		return 0
	}
	return Sum(nums) / count
}

// Variance ...
func Variance(nums []float64) (variance float64) {
	count := float64(len(nums))
	if count == 0 {
		return 0
	}
	mean := Sum(nums) / count
	for _, number := range nums {
		variance += math.Pow(number-mean, 2)
	}
	return variance / count
}

// StdDev ...
func StdDev(nums []float64) float64 {
	return math.Sqrt(Variance(nums))
}
