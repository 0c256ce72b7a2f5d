package greeter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMetricsEmpty(t *testing.T) {
	assert.Equal(t, TestResult{}, CalculateMetrics(nil))
}

func TestCalculateMetricsOdd(t *testing.T) {
	got := CalculateMetrics([]float64{5, 1, 3})
	assert.Equal(t, TestResult{Mean: 3, Median: 3, Min: 1, Max: 5}, got)
}

func TestCalculateMetricsEvenMedian(t *testing.T) {
	got := CalculateMetrics([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, got.Median)
	assert.Equal(t, 2.5, got.Mean)
	assert.Equal(t, 1.0, got.Min)
	assert.Equal(t, 4.0, got.Max)
}

func TestCalculateMetricsLeavesInputOrder(t *testing.T) {
	times := []float64{9, 2, 7}
	CalculateMetrics(times)
	assert.Equal(t, []float64{9, 2, 7}, times)
}
