package util

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Coerce returns a value that is at least min and at most max
func Coerce[T constraints.Ordered](value, min, max T) T {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

// CeilToInt rounds value up to the next whole number
func CeilToInt(value float64) int {
	return int(math.Ceil(value))
}

// MaxOf returns the largest element of values, or false if values is empty.
func MaxOf[T constraints.Ordered](values []T) (result T, ok bool) {
	if len(values) <= 0 {
		return result, false
	}
	result = values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}
	return result, true
}

func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}
