// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package insertion implements insertion sort, which is stable and efficient
// for short or nearly-sorted inputs.
package insertion

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sort returns a sorted copy of `s`, which is left unmodified.
func Sort[S ~[]E, E constraints.Ordered](s S) S {
	return SortFunc(s, cmp.Compare[E])
}

// SortFunc returns a copy of `s` sorted in ascending order as determined by
// `cmp`, which MUST return a negative number when a < b, a positive number
// when a > b and zero otherwise. Equal elements retain their original order.
func SortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	s = slices.Clone(s)
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmp(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return s
}
