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

// Package rpmotif finds recurring and noisy substrings (motifs) in a long
// sequence with the Random Projections algorithm.
//
// In each iteration, a random subset of offsets (a projection) in a window of
// motif length is drawn, and all substrings sharing the bases at these offsets
// are hashed into the same bucket. Substrings co-occurring in buckets are friends,
// and friends co-occurring more than quorum times are close friends.
// Motifs are ranked by sqrt(#friends) + #close friends by default.
package rpmotif

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Discover finds motifs in data with the given options,
// and returns motifs ranked by score in descending order,
// ties are broken by start position in ascending order.
//
// Options are validated before any work. The returned error wraps
// ErrInvalidArgument for bad arguments, ErrInvariantViolation for bugs,
// or the context error if ctx is done before all iterations finished.
func Discover(ctx context.Context, data []byte, opt *Options) ([]*Motif, error) {
	if opt == nil {
		opt = &DefaultOptions
	}
	if err := opt.Validate(len(data)); err != nil {
		return nil, err
	}

	r := rand.New(rand.NewSource(opt.Seed))

	maps, err := RunIterations(ctx, data, r, opt)
	if err != nil {
		return nil, invariant(err)
	}

	if opt.OnBuckets != nil {
		opt.OnBuckets(maps)
	}

	friends := Aggregate(maps, opt.threads())
	if opt.OnFriendLists != nil {
		opt.OnFriendLists(friends)
	}

	return BuildMotifs(data, opt.MotifLength, opt.Quorum, friends, opt.score())
}

// DiscoverMotifs finds motifs with DefaultOptions and the given parameters.
func DiscoverMotifs(data []byte, motifLength, permittedErrors, iterations, quorum int) ([]*Motif, error) {
	opt := DefaultOptions
	opt.MotifLength = motifLength
	opt.PermittedErrors = permittedErrors
	opt.Iterations = iterations
	opt.Quorum = quorum
	return Discover(context.Background(), data, &opt)
}

// invariant turns argument errors, which should have been caught by validation,
// into invariant violations. Context errors are returned as they are.
func invariant(err error) error {
	if errors.Is(err, ErrInvalidArgument) {
		return fmt.Errorf("%w: %s", ErrInvariantViolation, err)
	}
	return err
}
