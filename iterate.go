// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package rpmotif

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// SampleProjections draws n projections from r in order.
func SampleProjections(r *rand.Rand, motifLength int, factor float64, n int) ([]Projection, error) {
	projections := make([]Projection, n)
	var err error
	for i := range projections {
		projections[i], err = SampleProjection(r, motifLength, factor)
		if err != nil {
			return nil, err
		}
	}
	return projections, nil
}

// RunIterations draws opt.Iterations projections from r and hashes
// all substrings with each of them.
//
// All projections are drawn before any hashing starts, so the result
// only depends on the state of r, not on the scheduling of goroutines.
func RunIterations(ctx context.Context, data []byte, r *rand.Rand, opt *Options) ([]BucketMap, error) {
	if opt.Iterations <= 0 {
		return nil, ErrIterations
	}
	projections, err := SampleProjections(r, opt.MotifLength, opt.KSizeFactor, opt.Iterations)
	if err != nil {
		return nil, err
	}
	return RunProjections(ctx, data, opt.MotifLength, projections, opt)
}

// RunProjections hashes all substrings with each projection concurrently.
// The i-th bucket map in the result belongs to the i-th projection.
// The context is checked before each iteration starts,
// a canceled run returns the context error and no bucket maps.
func RunProjections(ctx context.Context, data []byte, motifLength int,
	projections []Projection, opt *Options) ([]BucketMap, error) {

	if len(projections) == 0 {
		return nil, ErrIterations
	}
	threads := opt.threads()

	// split threads between iterations and the hashing inside an iteration
	inner := threads / len(projections)
	if inner < 1 {
		inner = 1
	}

	maps := make([]BucketMap, len(projections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, p := range projections {
		if err := gctx.Err(); err != nil {
			break
		}

		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			m, err := HashSubstrings(data, motifLength, p, inner)
			if err != nil {
				return err
			}
			maps[i] = m

			if opt.Progress != nil {
				opt.Progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// canceled before any goroutine noticed it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return maps, nil
}
