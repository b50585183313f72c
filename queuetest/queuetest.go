// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queuetest provides testing helpers for the queue package and its
// consumers.
package queuetest

import (
	"testing"

	"go.uber.org/goleak"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent].
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}
