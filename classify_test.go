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
	"math/rand"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	type Case struct {
		friends  []int
		quorum   int
		ordinary []int
		close    map[int]int
	}
	tests := []Case{
		{[]int{2, 2, 5, 2, 5}, 1, nil, map[int]int{2: 3, 5: 2}},
		{[]int{2, 2, 5, 2, 5}, 2, []int{5}, map[int]int{2: 3}},
		{[]int{2, 2, 5, 2, 5}, 3, []int{2, 5}, map[int]int{}},
		{[]int{7, 1, 4}, 0, nil, map[int]int{1: 1, 4: 1, 7: 1}},
		{[]int{7, 1, 4}, 1, []int{1, 4, 7}, map[int]int{}},
		{nil, 1, nil, map[int]int{}},
	}

	for i, test := range tests {
		ordinary, close := Classify(append([]int{}, test.friends...), test.quorum)
		if !reflect.DeepEqual(ordinary, test.ordinary) {
			t.Errorf("[%d] ordinary friends: %v, expected: %v", i+1, ordinary, test.ordinary)
		}
		if !reflect.DeepEqual(close, test.close) {
			t.Errorf("[%d] close friends: %v, expected: %v", i+1, close, test.close)
		}
	}
}

func TestCountFriends(t *testing.T) {
	counts := CountFriends([]int{9, 3, 3, 1, 9, 3, 1})
	expected := []FriendCount{{3, 3}, {1, 2}, {9, 2}}
	if !reflect.DeepEqual(counts, expected) {
		t.Errorf("counts: %v, expected: %v", counts, expected)
	}
}

func TestClassifyProperties(t *testing.T) {
	r := rand.New(rand.NewSource(5))

	for n := 0; n < 50; n++ {
		friends := make([]int, r.Intn(200))
		uniq := make(map[int]struct{})
		for i := range friends {
			friends[i] = r.Intn(30)
			uniq[friends[i]] = struct{}{}
		}

		preClose := -1
		for quorum := 0; quorum < 12; quorum++ {
			ordinary, close := Classify(friends, quorum)

			// partition
			seen := make(map[int]struct{}, len(uniq))
			for _, i := range ordinary {
				if _, ok := close[i]; ok {
					t.Errorf("%d is both an ordinary and a close friend", i)
				}
				seen[i] = struct{}{}
			}
			for i, c := range close {
				if c <= quorum {
					t.Errorf("close friend %d with count %d <= quorum %d", i, c, quorum)
				}
				seen[i] = struct{}{}
			}
			if !reflect.DeepEqual(seen, uniq) {
				t.Errorf("friends are not fully partitioned")
			}

			// monotonicity
			if preClose >= 0 && len(close) > preClose {
				t.Errorf("close friends increased with quorum %d: %d > %d", quorum, len(close), preClose)
			}
			preClose = len(close)
		}
	}
}
