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
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Projection is a sorted list of distinct offsets in [0, motif length).
// Substrings sharing the bases at these offsets fall into the same bucket.
type Projection []int

// SampleProjection draws floor(motifLength * factor) distinct offsets
// in [0, motifLength) from r, and returns them in ascending order.
func SampleProjection(r *rand.Rand, motifLength int, factor float64) (Projection, error) {
	if motifLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrMotifLength, motifLength)
	}
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("%w: %f", ErrKSizeFactor, factor)
	}
	k := projectionSize(motifLength, factor)
	if k == 0 {
		return nil, fmt.Errorf("%w: motif length %d * factor %.2f", ErrEmptyProjection, motifLength, factor)
	}

	p := make(Projection, 0, k)
	used := make([]bool, motifLength)
	var i int
	for len(p) < k {
		i = r.Intn(motifLength)
		if used[i] { // draw again
			continue
		}
		used[i] = true
		p = append(p, i)
	}
	sort.Ints(p)

	return p, nil
}

// Check checks if all offsets are distinct, ascending, and in [0, motifLength).
func (p Projection) Check(motifLength int) error {
	if len(p) == 0 {
		return ErrEmptyProjection
	}
	pre := -1
	for _, o := range p {
		if o < 0 || o >= motifLength {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrProjectionOffset, o, motifLength)
		}
		if o <= pre {
			return fmt.Errorf("%w: offsets should be distinct and sorted: %s", ErrProjectionOffset, p)
		}
		pre = o
	}
	return nil
}

func (p Projection) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, o := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(o))
	}
	b.WriteByte(']')
	return b.String()
}
