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
	"fmt"
	"math"
	"runtime"
)

// Options contains all the parameters of a motif discovery run.
type Options struct {
	MotifLength     int // L, length of motifs
	PermittedErrors int // d, maximum mismatches between an instance and the motif
	Iterations      int // number of random projections
	Quorum          int // friends co-occurring more than Quorum times are close friends

	// k = floor(MotifLength * KSizeFactor).
	// k should leave room for the d noisy positions.
	KSizeFactor float64

	MinSeqLen          int     // minimum length of the sequence
	MinMotifLength     int     // minimum motif length
	MaxMotifLengthFrac float64 // motif length <= MaxMotifLengthFrac * len(sequence)
	MaxErrorFrac       float64 // permitted errors <= MaxErrorFrac * motif length

	Score ScoreFunc // nil for AdditiveScore

	Seed    int64 // seed of the random source for drawing projections
	Threads int   // maximum concurrency, <= 0 for runtime.NumCPU()

	// Progress, if not nil, is called after each finished iteration.
	// It might be called from multiple goroutines.
	Progress func()

	// Optional callbacks receiving intermediate results in Discover,
	// they must not modify the results.
	OnBuckets     func(maps []BucketMap)
	OnFriendLists func(friends FriendLists)
}

// DefaultOptions are the recommended options.
var DefaultOptions = Options{
	MotifLength:     12,
	PermittedErrors: 3,
	Iterations:      10,
	Quorum:          3,

	KSizeFactor: 0.4,

	MinSeqLen:          50,
	MinMotifLength:     4,
	MaxMotifLengthFrac: 0.2,
	MaxErrorFrac:       0.4,

	Score: AdditiveScore,

	Seed:    1,
	Threads: runtime.NumCPU(),
}

// K returns the projection size.
func (opt *Options) K() int {
	return projectionSize(opt.MotifLength, opt.KSizeFactor)
}

func projectionSize(motifLength int, factor float64) int {
	return int(math.Floor(float64(motifLength) * factor))
}

// Validate checks the options against a sequence of length seqLen.
// All returned errors wrap ErrInvalidArgument.
func (opt *Options) Validate(seqLen int) error {
	if seqLen == 0 || seqLen < opt.MinSeqLen {
		return fmt.Errorf("%w: %d < %d", ErrShortSeq, seqLen, opt.MinSeqLen)
	}

	L := opt.MotifLength
	if L < 1 || L < opt.MinMotifLength {
		return fmt.Errorf("%w: %d < %d", ErrMotifLength, L, opt.MinMotifLength)
	}
	if maxL := opt.MaxMotifLengthFrac * float64(seqLen); float64(L) > maxL {
		return fmt.Errorf("%w: %d > %.1f (%.2f of the sequence length %d)",
			ErrMotifLength, L, maxL, opt.MaxMotifLengthFrac, seqLen)
	}

	if opt.PermittedErrors < 0 {
		return fmt.Errorf("%w: %d < 0", ErrPermittedErrors, opt.PermittedErrors)
	}
	if maxD := opt.MaxErrorFrac * float64(L); float64(opt.PermittedErrors) > maxD {
		return fmt.Errorf("%w: %d > %.1f (%.2f of the motif length %d)",
			ErrPermittedErrors, opt.PermittedErrors, maxD, opt.MaxErrorFrac, L)
	}

	if opt.Iterations <= 0 {
		return fmt.Errorf("%w: %d", ErrIterations, opt.Iterations)
	}
	if opt.Quorum < 0 {
		return fmt.Errorf("%w: %d", ErrQuorum, opt.Quorum)
	}

	if opt.KSizeFactor <= 0 || opt.KSizeFactor > 1 {
		return fmt.Errorf("%w: %f", ErrKSizeFactor, opt.KSizeFactor)
	}
	if opt.K() == 0 {
		return fmt.Errorf("%w: motif length %d * factor %.2f", ErrEmptyProjection, L, opt.KSizeFactor)
	}

	return nil
}

func (opt *Options) threads() int {
	if opt.Threads <= 0 {
		return runtime.NumCPU()
	}
	return opt.Threads
}

func (opt *Options) score() ScoreFunc {
	if opt.Score == nil {
		return AdditiveScore
	}
	return opt.Score
}
