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
	"math/rand"
	"reflect"
	"testing"
)

func randomSeq(r *rand.Rand, n int, alphabet string) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[r.Intn(len(alphabet))]
	}
	return s
}

func TestHashSubstrings(t *testing.T) {
	data := []byte("abcXYZabcXYZabcWWW")

	m, err := HashSubstrings(data, 3, Projection{0, 1}, 4)
	if err != nil {
		t.Error(err)
		return
	}

	expected := []int{0, 6, 12}
	if !reflect.DeepEqual(m["ab"], expected) {
		t.Errorf("bucket of ab: %v, expected: %v", m["ab"], expected)
	}
	if !reflect.DeepEqual(m["XY"], []int{3, 9}) {
		t.Errorf("bucket of XY: %v, expected: %v", m["XY"], []int{3, 9})
	}

	checkBuckets(t, m, len(data)-3+1)
}

// checkBuckets checks that every position in [0, nPos) appears exactly once,
// and positions in every bucket are ascending.
func checkBuckets(t *testing.T, m BucketMap, nPos int) {
	seen := make([]int, nPos)
	for key, list := range m {
		for j, i := range list {
			if i < 0 || i >= nPos {
				t.Errorf("bucket %s: position %d out of range", key, i)
				continue
			}
			if j > 0 && list[j-1] >= i {
				t.Errorf("bucket %s: positions not ascending: %v", key, list)
			}
			seen[i]++
		}
	}
	for i, n := range seen {
		if n != 1 {
			t.Errorf("position %d appears %d times", i, n)
		}
	}
}

func TestHashSubstringsParallel(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := randomSeq(r, 30000, "ACGT")
	L := 10
	p := Projection{1, 4, 7, 9}

	m1, err := HashSubstrings(data, L, p, 1)
	if err != nil {
		t.Error(err)
		return
	}
	m4, err := HashSubstrings(data, L, p, 4)
	if err != nil {
		t.Error(err)
		return
	}

	if !reflect.DeepEqual(m1, m4) {
		t.Errorf("bucket maps differ between 1 and 4 threads")
	}
	checkBuckets(t, m4, len(data)-L+1)
}

func TestHashSubstringsShortSeq(t *testing.T) {
	m, err := HashSubstrings([]byte("abc"), 5, Projection{0, 2}, 1)
	if err != nil {
		t.Error(err)
		return
	}
	if len(m) != 0 {
		t.Errorf("no buckets expected for a sequence shorter than the motif length: %v", m)
	}
}

func TestHashSubstringsInvalidProjection(t *testing.T) {
	_, err := HashSubstrings([]byte("abcXYZabcXYZ"), 3, Projection{0, 3}, 1)
	if !errors.Is(err, ErrProjectionOffset) || !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unexpected error: %v", err)
	}
}
