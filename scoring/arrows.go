package scoring

import (
	"archery/app_error"
	"archery/utils"
	"fmt"
)

const (
	MaxArrowsPerEnd = 6
	MaxArrowValue   = 10
)

// ValidateArrows checks one end against the range's arrows per end.
func ValidateArrows(arrows []int, arrowsPerEnd int) error {
	if len(arrows) == 0 {
		return app_error.Validation("an end needs at least one arrow")
	}
	if len(arrows) > MaxArrowsPerEnd {
		return app_error.Validation(fmt.Sprintf("an end holds at most %d arrows", MaxArrowsPerEnd))
	}
	if arrowsPerEnd > 0 && len(arrows) > arrowsPerEnd {
		return app_error.Validation(fmt.Sprintf("this range allows %d arrows per end", arrowsPerEnd))
	}
	for i, a := range arrows {
		if a < 0 || a > MaxArrowValue {
			return app_error.Validation(fmt.Sprintf("arrow %d has value %d, expected 0-%d", i+1, a, MaxArrowValue))
		}
	}
	return nil
}

func EndTotal(arrows []int) int {
	return utils.Sum(arrows)
}

func CountValue(arrows []int, value int) int {
	count := 0
	for _, a := range arrows {
		if a == value {
			count++
		}
	}
	return count
}

func ToInt64(arrows []int) []int64 {
	out := make([]int64, len(arrows))
	for i, a := range arrows {
		out[i] = int64(a)
	}
	return out
}

func FromInt64(arrows []int64) []int {
	out := make([]int, len(arrows))
	for i, a := range arrows {
		out[i] = int(a)
	}
	return out
}
