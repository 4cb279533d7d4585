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
	"sync"

	"github.com/shenwei356/rpmotif/iterator"
)

// BucketMap maps a projected value to the ascending start positions
// of all substrings with this projected value.
type BucketMap map[string][]int

// minPositionsPerThread avoids spawning goroutines for tiny ranges.
const minPositionsPerThread = 4096

// HashSubstrings puts the start positions of all substrings of size motifLength
// into buckets keyed by their projected values.
// Every position in [0, len(data)-motifLength] appears exactly once in the result.
//
// The position range is split into chunks hashed by at most threads goroutines,
// partial bucket maps are then merged in the order of chunks,
// so positions in a bucket are always ascending.
func HashSubstrings(data []byte, motifLength int, p Projection, threads int) (BucketMap, error) {
	if motifLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrMotifLength, motifLength)
	}
	if err := p.Check(motifLength); err != nil {
		return nil, err
	}

	nPos := len(data) - motifLength + 1
	if nPos <= 0 {
		return BucketMap{}, nil
	}

	if threads <= 0 {
		threads = 1
	}
	if n := nPos/minPositionsPerThread + 1; n < threads {
		threads = n
	}

	if threads == 1 {
		m := make(BucketMap, 1024)
		if err := hashRange(m, data, motifLength, p, 0, nPos); err != nil {
			return nil, err
		}
		return m, nil
	}

	partials := make([]BucketMap, threads)
	errs := make([]error, threads)

	var wg sync.WaitGroup
	n := nPos/threads + 1
	var start, end int
	for j := 0; j < threads; j++ {
		start, end = j*n, (j+1)*n
		if end > nPos {
			end = nPos
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(j, start, end int) {
			defer wg.Done()
			m := make(BucketMap, 1024)
			errs[j] = hashRange(m, data, motifLength, p, start, end)
			partials[j] = m
		}(j, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// merge by key, chunks are in ascending order of positions
	m := partials[0]
	var list []int
	var ok bool
	for _, pm := range partials[1:] {
		for key, locs := range pm {
			if list, ok = m[key]; ok {
				m[key] = append(list, locs...)
			} else {
				m[key] = locs
			}
		}
	}

	return m, nil
}

func hashRange(m BucketMap, data []byte, motifLength int, p Projection, start, end int) error {
	iter, err := iterator.NewProjectionIteratorRange(data, motifLength, p, start, end)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}

	var key []byte
	var ok bool
	var list []int
	for {
		key, ok = iter.Next()
		if !ok {
			break
		}

		if list, ok = m[string(key)]; ok {
			m[string(key)] = append(list, iter.Index())
		} else {
			m[string(key)] = []int{iter.Index()}
		}
	}
	return nil
}

// Positions returns the number of start positions hashed in the map.
func (m BucketMap) Positions() int {
	var n int
	for _, list := range m {
		n += len(list)
	}
	return n
}
