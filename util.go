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

// IsLowComplexity checks if a substring is of low complexity,
// i.e., it is mostly made of short tandem repeats like "AAAAA" or "ACACAC".
// Such substrings share buckets with their own shifted copies,
// and often dominate the ranking.
func IsLowComplexity(s []byte) bool {
	k := len(s)
	count := make(map[string]int, k)
	_ke := k / 2
	var e, i, c int
	var w string
	for _k := 2; _k <= _ke; _k++ {
		clear(count)
		e = k - _k
		for i = 0; i <= e; i++ {
			w = string(s[i : i+_k])
			count[w]++
		}
		for w, c = range count {
			if c == 1 {
				continue
			}

			// c>=4:
			//   1. >=2-mer * 4
			//   2. homopolymer longer than 4: like AAAAA
			// len(w)+c >= 6:
			//   1. 2-mer for >=4 times
			//   2. 3-mer for >=3 times
			//   3. 4+mer for >=2 times
			if c >= 4 || len(w)+c >= 6 {
				return true
			}
		}
	}

	return false
}

// FilterLowComplexity removes motifs of low complexity, the order is kept.
func FilterLowComplexity(motifs []*Motif) []*Motif {
	kept := make([]*Motif, 0, len(motifs))
	for _, m := range motifs {
		if IsLowComplexity(m.Seq) {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}
