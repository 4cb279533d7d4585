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
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of all errors caused by bad input or options.
var ErrInvalidArgument = errors.New("rpmotif: invalid argument")

// ErrInvariantViolation means an internal bug, there is no usable result.
var ErrInvariantViolation = errors.New("rpmotif: internal invariant violation")

// Errors below wrap ErrInvalidArgument.
var (
	// ErrShortSeq means the sequence is empty or shorter than Options.MinSeqLen.
	ErrShortSeq = fmt.Errorf("%w: sequence too short", ErrInvalidArgument)

	// ErrMotifLength means the motif length is out of the valid range.
	ErrMotifLength = fmt.Errorf("%w: motif length out of range", ErrInvalidArgument)

	// ErrPermittedErrors means too many permitted errors for the motif length.
	ErrPermittedErrors = fmt.Errorf("%w: too many permitted errors", ErrInvalidArgument)

	// ErrIterations means the number of iterations is not positive.
	ErrIterations = fmt.Errorf("%w: iterations should be > 0", ErrInvalidArgument)

	// ErrQuorum means a negative quorum.
	ErrQuorum = fmt.Errorf("%w: quorum should be >= 0", ErrInvalidArgument)

	// ErrKSizeFactor means the projection size factor is not in (0, 1].
	ErrKSizeFactor = fmt.Errorf("%w: projection size factor should be in (0, 1]", ErrInvalidArgument)

	// ErrEmptyProjection means the projection size computed from the motif length is 0.
	ErrEmptyProjection = fmt.Errorf("%w: empty projection", ErrInvalidArgument)

	// ErrProjectionOffset means a projection offset is not in [0, motif length).
	ErrProjectionOffset = fmt.Errorf("%w: projection offset out of range", ErrInvalidArgument)
)
