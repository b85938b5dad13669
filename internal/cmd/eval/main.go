// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// eval provides a way to validate the diffing algorithm by applying the resulting edit scripts to
// random inputs and checking that they produce the expected output again.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"znkr.io/movediff"
)

type config struct {
	runs      int
	size      int
	alphabet  int
	parallel  int
	seed      uint64
	strict    bool
	failFast  bool
	verbosity int
}

func main() {
	var cfg config
	rootCmd := &cobra.Command{
		Use:          "eval",
		Short:        "Validate edit scripts on random inputs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cfg.verbosity)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.runs, "runs", 10000, "number of random input pairs to evaluate")
	flags.IntVar(&cfg.size, "size", 100, "maximum number of elements per input")
	flags.IntVar(&cfg.alphabet, "alphabet", 50, "number of distinct elements")
	flags.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flags.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	flags.BoolVar(&cfg.strict, "strict", false, "report every displaced element as a move")
	flags.BoolVar(&cfg.failFast, "fail-fast", false, "stop at the first failure")
	flags.CountVarP(&cfg.verbosity, "verbose", "v", "increase verbosity (-v, -vv, -vvv)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type stats struct {
	runs     atomic.Int64
	failures atomic.Int64
	deletes  atomic.Int64
	inserts  atomic.Int64
	moves    atomic.Int64
}

func run(ctx context.Context, cfg *config) error {
	if cfg.runs < 0 || cfg.size < 0 || cfg.alphabet < 1 || cfg.parallel < 1 {
		return fmt.Errorf("invalid configuration: runs=%d size=%d alphabet=%d parallel=%d", cfg.runs, cfg.size, cfg.alphabet, cfg.parallel)
	}

	var opts []movediff.Option
	if cfg.strict {
		opts = append(opts, movediff.StrictMoves())
	}

	log.Info().
		Int("runs", cfg.runs).
		Int("size", cfg.size).
		Int("alphabet", cfg.alphabet).
		Uint64("seed", cfg.seed).
		Bool("strict", cfg.strict).
		Msg("starting evaluation")

	start := time.Now()
	var st stats
	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.parallel {
		g.Go(func() error {
			for i := w; i < cfg.runs; i += cfg.parallel {
				if err := ctx.Err(); err != nil {
					return err
				}
				err := evaluate(cfg, i, opts, &st)
				if err == nil {
					continue
				}
				st.failures.Add(1)
				if cfg.failFast {
					return err
				}
				log.Error().Err(err).Int("run", i).Msg("evaluation failed")
			}
			return nil
		})
	}
	err := g.Wait()

	log.Info().
		Int64("runs", st.runs.Load()).
		Int64("failures", st.failures.Load()).
		Int64("deletes", st.deletes.Load()).
		Int64("inserts", st.inserts.Load()).
		Int64("moves", st.moves.Load()).
		Dur("duration", time.Since(start)).
		Msg("evaluation done")

	if err != nil {
		return err
	}
	if n := st.failures.Load(); n > 0 {
		return fmt.Errorf("%d of %d evaluations failed", n, cfg.runs)
	}
	return nil
}

// evaluate computes the edits for the i-th random input pair and checks that applying them to x
// results in y.
func evaluate(cfg *config, i int, opts []movediff.Option, st *stats) error {
	rnd := rand.New(rand.NewChaCha8(seed(cfg.seed, i)))
	x, y := randomPair(rnd, cfg.size, cfg.alphabet)

	edits := movediff.Edits(x, y, opts...)
	for _, e := range edits {
		switch e.Op {
		case movediff.Delete:
			st.deletes.Add(1)
		case movediff.Insert:
			st.inserts.Add(1)
		case movediff.Move:
			st.moves.Add(1)
		}
	}
	st.runs.Add(1)
	log.Trace().Int("run", i).Int("n", len(x)).Int("m", len(y)).Int("edits", len(edits)).Msg("evaluated")

	got, err := movediff.Apply(x, edits)
	if err != nil {
		return fmt.Errorf("run %d: applying edits: %v\nx = %v\ny = %v", i, err, x, y)
	}
	if !slices.Equal(got, y) {
		return fmt.Errorf("run %d: result is different after applying edits\nx    = %v\ny    = %v\ngot  = %v", i, x, y, got)
	}
	return nil
}

func seed(base uint64, i int) [32]byte {
	var b []byte
	b = binary.LittleEndian.AppendUint64(b, base)
	b = binary.LittleEndian.AppendUint64(b, uint64(i))
	return sha256.Sum256(b)
}

// randomPair returns a random input x with up to size elements and a random modification y of x.
func randomPair(rnd *rand.Rand, size, alphabet int) (x, y []int) {
	n := rnd.IntN(size + 1)
	x = make([]int, n)
	for i := range x {
		x[i] = rnd.IntN(alphabet)
	}

	y = slices.Clone(x)
	for range rnd.IntN(n/4 + 2) {
		switch rnd.IntN(4) {
		case 0: // delete
			if len(y) > 0 {
				i := rnd.IntN(len(y))
				y = slices.Delete(y, i, i+1)
			}
		case 1: // insert
			y = slices.Insert(y, rnd.IntN(len(y)+1), rnd.IntN(alphabet))
		case 2: // swap
			if len(y) > 1 {
				i, j := rnd.IntN(len(y)), rnd.IntN(len(y))
				y[i], y[j] = y[j], y[i]
			}
		case 3: // move a block
			if len(y) > 1 {
				i := rnd.IntN(len(y))
				j := i + 1 + rnd.IntN(len(y)-i)
				block := slices.Clone(y[i:j])
				y = slices.Delete(y, i, j)
				y = slices.Insert(y, rnd.IntN(len(y)+1), block...)
			}
		}
	}
	return x, y
}
