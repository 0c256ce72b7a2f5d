package greeter

import "sort"

// minimum is 0 for an empty sample.
func minimum(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	min := arr[0]
	for _, value := range arr {
		if value < min {
			min = value
		}
	}
	return min
}

// maximum is 0 for an empty sample.
func maximum(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	max := arr[0]
	for _, value := range arr {
		if value > max {
			max = value
		}
	}
	return max
}

// median sorts a copy; the caller's sample order is preserved.
func median(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	sorted := append([]float64(nil), arr...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2.0
	}
	return sorted[mid]
}

// mean is the arithmetic average, 0 for an empty sample.
func mean(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	var sum float64
	for _, value := range arr {
		sum += value
	}
	return sum / float64(len(arr))
}

// CalculateMetrics summarizes latencies given in milliseconds.
func CalculateMetrics(times []float64) TestResult {
	return TestResult{
		Min:    minimum(times),
		Max:    maximum(times),
		Median: median(times),
		Mean:   mean(times),
	}
}
