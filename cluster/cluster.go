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

// Package cluster merges motif instances that are mutual close friends
// into canonical motifs with support counts.
package cluster

import (
	"sort"

	"github.com/cznic/sortutil"
	"github.com/shenwei356/rpmotif"
)

// Options contains the parameters of clustering.
type Options struct {
	MinSupport int // minimum number of instances of a canonical motif
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	MinSupport: 2,
}

// Group is a canonical motif built from a group of motif instances.
type Group struct {
	Consensus []byte // column-wise majority of all instances
	Members   []int  // start positions of instances, ascending
	Support   int    // number of instances
}

// Cluster links every two motifs which are close friends of each other,
// and returns connected groups with at least opt.MinSupport members,
// sorted by support in descending order, then by the first member.
func Cluster(motifs []*rpmotif.Motif, opt *Options) []*Group {
	if opt == nil {
		opt = &DefaultOptions
	}

	byIndex := make(map[int]*rpmotif.Motif, len(motifs))
	for _, m := range motifs {
		byIndex[m.Index] = m
	}

	uf := newUnionFind()
	nodes := make([]int, 0, 1024) // positions with mutual close friends
	var f *rpmotif.Motif
	var ok bool
	for _, m := range motifs {
		for j := range m.CloseFriends {
			if f, ok = byIndex[j]; !ok {
				continue
			}
			if _, ok = f.CloseFriends[m.Index]; ok {
				uf.union(m.Index, j)
				nodes = append(nodes, m.Index, j)
			}
		}
	}
	sort.Ints(nodes)
	nodes = nodes[:sortutil.Dedupe(sort.IntSlice(nodes))]

	// nodes are ascending, so are members
	components := make(map[int][]int, 64)
	var r int
	for _, i := range nodes {
		r = uf.find(i)
		components[r] = append(components[r], i)
	}

	groups := make([]*Group, 0, len(components))
	var n int
	for _, members := range components {
		n = len(members)
		if n < opt.MinSupport {
			continue
		}

		seqs := make([][]byte, n)
		for i, idx := range members {
			seqs[i] = byIndex[idx].Seq
		}
		groups = append(groups, &Group{
			Consensus: Consensus(seqs),
			Members:   members,
			Support:   n,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Support == b.Support {
			return a.Members[0] < b.Members[0]
		}
		return a.Support > b.Support
	})

	return groups
}

// Consensus returns the most frequent symbol of each column,
// the smaller symbol is chosen for ties.
// All sequences should have the same length as the first one.
func Consensus(seqs [][]byte) []byte {
	if len(seqs) == 0 {
		return nil
	}
	L := len(seqs[0])
	cons := make([]byte, L)
	var counts [256]int
	var best, c int
	for col := 0; col < L; col++ {
		counts = [256]int{}
		for _, s := range seqs {
			if col < len(s) {
				counts[s[col]]++
			}
		}
		best = 0
		for c = 1; c < 256; c++ {
			if counts[c] > counts[best] {
				best = c
			}
		}
		cons[col] = byte(best)
	}
	return cons
}

// Supports returns the support of each consensus string.
// Supports of groups sharing the same consensus are summed.
func Supports(groups []*Group) map[string]int {
	m := make(map[string]int, len(groups))
	for _, g := range groups {
		m[string(g.Consensus)] += g.Support
	}
	return m
}

type unionFind struct {
	parent map[int]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[int]int, 1024)}
}

func (uf *unionFind) find(i int) int {
	p, ok := uf.parent[i]
	if !ok {
		uf.parent[i] = i
		return i
	}
	if p == i {
		return i
	}
	r := uf.find(p)
	uf.parent[i] = r
	return r
}

func (uf *unionFind) union(i, j int) {
	ri, rj := uf.find(i), uf.find(j)
	if ri == rj {
		return
	}
	// the smaller position as the root
	if ri < rj {
		uf.parent[rj] = ri
	} else {
		uf.parent[ri] = rj
	}
}
