// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The queuedemo binary exercises a [queue.Bounded] queue, printing its state
// after each operation and, with -verbose, logging every compaction.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/lazyqueue/queue"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := queue.DefaultConfig()
	flag.IntVar(&cfg.MinLen, "min_len", cfg.MinLen, "Storage length at or below which compaction is skipped")
	flag.Float64Var(&cfg.MaxWastedRatio, "max_wasted_ratio", cfg.MaxWastedRatio, "Fraction of storage that may be consumed before compaction")
	n := flag.Int("n", 100, "Number of integers to push and then pop after the emoji walkthrough")
	verbose := flag.Bool("verbose", false, "If true, logs each compaction")
	flag.Parse()

	level := logging.Info
	if *verbose {
		level = logging.Debug
	}
	logger := logging.NewLogger("", logging.NewWrappedCore(
		level, os.Stderr, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			TimeKey:    "time",
			LevelKey:   "level",
		}),
	))

	if err := run(os.Stdout, cfg, *n, logger); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, cfg queue.Config, n int, logger logging.Logger) error {
	if n < 0 {
		return fmt.Errorf("negative number of integers %d", n)
	}

	emoji, err := queue.New[string](cfg, logger)
	if err != nil {
		return fmt.Errorf("queue.New(%+v): %w", cfg, err)
	}
	for _, s := range []string{"🦖", "👻", "👽"} {
		emoji.Push(s)
		if err := printState(w, "push "+s, emoji); err != nil {
			return err
		}
	}
	for range 2 {
		s, _ := emoji.Pop()
		if err := printState(w, "pop "+s, emoji); err != nil {
			return err
		}
	}
	emoji.Push("👾")
	if err := printState(w, "push 👾", emoji); err != nil {
		return err
	}

	ints, err := queue.New[int](cfg, logger)
	if err != nil {
		return fmt.Errorf("queue.New(%+v): %w", cfg, err)
	}
	ints.Grow(n)
	for i := range n {
		ints.Push(i)
	}
	var sum int
	for {
		x, ok := ints.Pop()
		if !ok {
			break
		}
		sum += x
	}
	logger.Info("Drained integer queue", zap.Int("pushed", n), zap.Int("sum", sum))
	_, err = fmt.Fprintf(w, "pushed and popped %d integers; sum %d\n", n, sum)
	return err
}

func printState[T any](w io.Writer, op string, q *queue.Bounded[T]) error {
	var front any = "<none>"
	if x, ok := q.Peek(); ok {
		front = x
	}
	_, err := fmt.Fprintf(w, "%s: len=%d front=%v\n", op, q.Len(), front)
	return err
}
