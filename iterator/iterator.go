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

package iterator

import (
	"errors"
	"sync"
)

// ErrInvalidK means k < 1.
var ErrInvalidK = errors.New("projection iterator: invalid window size (k >= 1)")

// ErrEmptyProjection means no offsets are given.
var ErrEmptyProjection = errors.New("projection iterator: empty projection")

// ErrOffsetOverflow means an offset is not in [0, k).
var ErrOffsetOverflow = errors.New("projection iterator: offset out of window")

// ErrShortSeq means the sequence is shorter than k.
var ErrShortSeq = errors.New("projection iterator: sequence too short")

// ErrInvalidRange means the range of start positions is out of the sequence.
var ErrInvalidRange = errors.New("projection iterator: invalid range of positions")

var poolIterator = &sync.Pool{New: func() interface{} {
	return &Iterator{key: make([]byte, 0, 32)}
}}

// Iterator walks through all windows of size k in a sequence,
// and returns the projected value of each window,
// i.e., the concatenation of bases at the given offsets.
type Iterator struct {
	s       []byte
	k       int
	offsets []int

	finished bool
	idx      int // next start position
	end      int // the last start position + 1

	key []byte // buffer of the projected value
}

// NewProjectionIterator returns an iterator of all windows
// starting at positions [0, len(s)-k].
func NewProjectionIterator(s []byte, k int, offsets []int) (*Iterator, error) {
	return NewProjectionIteratorRange(s, k, offsets, 0, len(s)-k+1)
}

// NewProjectionIteratorRange returns an iterator of windows
// starting at positions [start, end).
func NewProjectionIteratorRange(s []byte, k int, offsets []int, start, end int) (*Iterator, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(offsets) == 0 {
		return nil, ErrEmptyProjection
	}
	for _, o := range offsets {
		if o < 0 || o >= k {
			return nil, ErrOffsetOverflow
		}
	}
	if len(s) < k {
		return nil, ErrShortSeq
	}
	if start < 0 || start > end || end > len(s)-k+1 {
		return nil, ErrInvalidRange
	}

	iter := poolIterator.Get().(*Iterator)
	iter.s = s
	iter.k = k
	iter.offsets = offsets
	iter.finished = false
	iter.idx = start
	iter.end = end
	iter.key = iter.key[:0]

	return iter, nil
}

// Next returns the projected value of the next window.
// The returned slice is reused in the following call, please copy it if needed.
// The iterator is recycled once it returns false, do not use it again.
func (iter *Iterator) Next() ([]byte, bool) {
	if iter.finished {
		return nil, false
	}

	if iter.idx == iter.end { // recycle the Iterator
		iter.finished = true
		iter.s = nil
		iter.offsets = nil
		poolIterator.Put(iter)
		return nil, false
	}

	key := iter.key[:0]
	w := iter.s[iter.idx : iter.idx+iter.k]
	for _, o := range iter.offsets {
		key = append(key, w[o])
	}
	iter.key = key
	iter.idx++

	return key, true
}

// Index returns the current 0-based start position.
func (iter *Iterator) Index() int {
	return iter.idx - 1
}
