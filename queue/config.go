// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"errors"
	"fmt"
	"math"
)

// Config controls when a [Bounded] queue compacts its storage. Compaction runs
// after a successful [Bounded.Pop] i.f.f. the storage length is greater than
// MinLen and the fraction of storage behind the head is greater than
// MaxWastedRatio.
type Config struct {
	// MinLen is the storage length at or below which compaction is skipped, as
	// wasted space in a small queue is cheap in absolute terms.
	MinLen int
	// MaxWastedRatio is the fraction of storage, in [0,1), that may be occupied
	// by consumed slots before compaction.
	MaxWastedRatio float64
}

// DefaultConfig returns the [Config] used by the zero [Bounded] queue.
func DefaultConfig() Config {
	return Config{
		MinLen:         50,
		MaxWastedRatio: 0.25,
	}
}

var (
	ErrNegativeMinLen        = errors.New("negative minimum length")
	ErrWastedRatioOutOfRange = errors.New("wasted ratio out of range [0,1)")
)

// Validate returns an error if the [Config] can't be used to construct a
// [Bounded] queue.
func (c *Config) Validate() error {
	if c.MinLen < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMinLen, c.MinLen)
	}
	if r := c.MaxWastedRatio; math.IsNaN(r) || r < 0 || r >= 1 {
		return fmt.Errorf("%w: %v", ErrWastedRatioOutOfRange, r)
	}
	return nil
}
