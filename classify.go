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
	"sort"

	"github.com/twotwotwo/sorts/sortutil"
)

// FriendCount is a friend and the number of buckets shared with it.
type FriendCount struct {
	Index int
	Count int
}

// CountFriends counts occurrences of each friend in a friend list,
// results are sorted by count in descending order, then by index in ascending order.
// The input list is sorted in place if it is not sorted.
func CountFriends(friends []int) []FriendCount {
	if len(friends) == 0 {
		return nil
	}
	if !sort.IntsAreSorted(friends) {
		sortutil.Ints(friends)
	}

	counts := make([]FriendCount, 0, 8)
	pre := friends[0]
	n := 0
	for _, i := range friends {
		if i == pre {
			n++
			continue
		}
		counts = append(counts, FriendCount{Index: pre, Count: n})
		pre, n = i, 1
	}
	counts = append(counts, FriendCount{Index: pre, Count: n})

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Classify splits friends into ordinary friends and close friends.
// Close friends co-occur with the owner more than quorum times,
// their counts are kept. Ordinary friends are returned in ascending order.
func Classify(friends []int, quorum int) (ordinary []int, close map[int]int) {
	close = make(map[int]int)
	for _, c := range CountFriends(friends) {
		if c.Count > quorum {
			close[c.Index] = c.Count
		} else {
			ordinary = append(ordinary, c.Index)
		}
	}
	sort.Ints(ordinary)
	return ordinary, close
}
