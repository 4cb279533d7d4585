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
	"sync"

	"github.com/twotwotwo/sorts/sortutil"
)

// FriendLists stores friend lists of all start positions,
// i.e., FriendLists[i] is the friend list of position i, nil for none.
//
// A friend list contains all other positions sharing a bucket with i,
// in all bucket maps. A friend appears once for each shared bucket,
// and the list is sorted in ascending order.
type FriendLists [][]int

// Aggregate builds friend lists from bucket maps.
//
// Positions are split into disjoint ranges, each handled by one goroutine
// which walks through all buckets and only writes lists of its own range.
func Aggregate(maps []BucketMap, threads int) FriendLists {
	nPos := 0 // the largest position + 1
	for _, m := range maps {
		for _, list := range m {
			if len(list) == 0 {
				continue
			}
			if last := list[len(list)-1]; last >= nPos {
				nPos = last + 1
			}
		}
	}
	friends := make(FriendLists, nPos)
	if nPos == 0 {
		return friends
	}

	// buckets with more than one position, singletons have no friends
	buckets := make([][]int, 0, 1024)
	for _, m := range maps {
		for _, list := range m {
			if len(list) > 1 {
				buckets = append(buckets, list)
			}
		}
	}

	if threads <= 0 {
		threads = 1
	}
	if threads > nPos {
		threads = nPos
	}

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
		go func(start, end int) {
			defer wg.Done()
			aggregateRange(friends, buckets, start, end)
		}(start, end)
	}
	wg.Wait()

	return friends
}

// aggregateRange fills friend lists of positions in [start, end).
func aggregateRange(friends FriendLists, buckets [][]int, start, end int) {
	var b, e, k, i int
	var list []int
	for _, bucket := range buckets {
		// positions in a bucket are ascending
		b = sort.SearchInts(bucket, start)
		e = b + sort.SearchInts(bucket[b:], end)
		for k = b; k < e; k++ {
			i = bucket[k]
			list = friends[i]
			list = append(list, bucket[:k]...)
			list = append(list, bucket[k+1:]...)
			friends[i] = list
		}
	}

	for i = start; i < end; i++ {
		if len(friends[i]) > 1 {
			sortutil.Ints(friends[i])
		}
	}
}

// Positions returns the number of positions having at least one friend.
func (fl FriendLists) Positions() int {
	var n int
	for _, list := range fl {
		if len(list) > 0 {
			n++
		}
	}
	return n
}
