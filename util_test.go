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
	"testing"
)

func TestLowComplexity(t *testing.T) {
	type Case struct {
		Seq  string
		LowC bool
	}
	tests := []Case{
		{"AAAAAAA", true},
		{"CCCCCCC", true},
		{"zzzzzzz", true},

		{"ACAACAACAACAACA", true},
		{"ACAACAACAACAACG", true},
		{"ACAACAACAACACCG", true},
		{"ACAACAACAACACCA", true},
		{"ACAACAACAACAAAA", true},

		{"ACGACTACAGCAAAA", false},

		{"ACAAGGTACTCGCCG", false},
		{"ACAAGGTACTGGCCG", false},
		{"ACAAGGTACTCGACG", false},
		{"ACAAGGTACTATCAA", false},
		{"ACAAGGTACTCGGCG", false},
		{"ACAAGGTACTATTTT", false},

		{"ACACACCAATAGCAG", true},

		{"GATTACACATGC", false},
		{"abcXYZ", false},
	}

	for i, test := range tests {
		r := IsLowComplexity([]byte(test.Seq))
		if r != test.LowC {
			t.Errorf("[%d] %s, expected: %v, result: %v", i+1, test.Seq, test.LowC, r)
		}
	}
}

func TestFilterLowComplexity(t *testing.T) {
	motifs := []*Motif{
		{Index: 0, Seq: []byte("AAAAAAAA")},
		{Index: 9, Seq: []byte("GATTACACATGC")},
		{Index: 3, Seq: []byte("CACACACA")},
	}
	kept := FilterLowComplexity(motifs)
	if len(kept) != 1 || kept[0].Index != 9 {
		t.Errorf("unexpected motifs after filtering: %v", kept)
	}
}
