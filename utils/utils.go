package utils

import "io"

func Map[A any, B any](input []A, mapper func(A) B) []B {
	output := make([]B, len(input))
	for i, item := range input {
		output[i] = mapper(item)
	}
	return output
}

func FlatMap[A any, B any](input []A, mapper func(A) []B) []B {
	return Flatten(Map(input, mapper))
}

func Flatten[A any](input [][]A) []A {
	output := make([]A, 0)
	for _, item := range input {
		output = append(output, item...)
	}
	return output
}

func Filter[A any](input []A, filter func(A) bool) []A {
	output := make([]A, 0)
	for _, item := range input {
		if filter(item) {
			output = append(output, item)
		}
	}
	return output
}

func Contains[A comparable](input []A, item A) bool {
	for _, i := range input {
		if i == item {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every element of sub is in set.
func ContainsAll[A comparable](set []A, sub []A) bool {
	lookup := ToSet(set)
	for _, item := range sub {
		if !lookup[item] {
			return false
		}
	}
	return true
}

func ToSet[A comparable](input []A) map[A]bool {
	set := make(map[A]bool, len(input))
	for _, item := range input {
		set[item] = true
	}
	return set
}

func GroupBy[A any, K comparable](input []A, key func(A) K) map[K][]A {
	groups := make(map[K][]A)
	for _, item := range input {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

func Keys[A comparable, B any](input map[A]B) []A {
	keys := make([]A, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	return keys
}

func Uniques[A comparable](input []A) []A {
	return Keys(ToSet(input))
}

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

func Max[T Ordered](a []T) T {
	max := a[0]
	for _, v := range a {
		if v > max {
			max = v
		}
	}
	return max
}

func Sum[T Ordered](a []T) T {
	var sum T
	for _, v := range a {
		sum += v
	}
	return sum
}

// Closer returns a func suitable for defer that drops the Close error.
func Closer(c io.Closer) func() {
	return func() {
		_ = c.Close()
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
