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

// Package report renders discovered motifs and intermediate results.
package report

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/shenwei356/rpmotif"
	"github.com/shenwei356/rpmotif/cluster"
)

// WriteTSV writes the top n motifs in tab-delimited format, n <= 0 for all.
// Close friends are listed as position:count.
func WriteTSV(w io.Writer, motifs []*rpmotif.Motif, n int, header bool) error {
	bw := bufio.NewWriter(w)

	if header {
		fmt.Fprintf(bw, "rank\tindex\tmotif\tscore\tfriends\tclose_friends\tclose_friend_list\n")
	}

	var buf strings.Builder
	for i, m := range top(motifs, n) {
		buf.Reset()
		for j, f := range m.CloseFriendIndexes() {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(f))
			buf.WriteByte(':')
			buf.WriteString(strconv.Itoa(m.CloseFriends[f]))
		}

		fmt.Fprintf(bw, "%d\t%d\t%s\t%.3f\t%d\t%d\t%s\n",
			i+1, m.Index, m.Seq, m.Score(), len(m.Friends), len(m.CloseFriends), buf.String())
	}

	return bw.Flush()
}

// WriteText writes the top n motifs, one per line, n <= 0 for all.
func WriteText(w io.Writer, motifs []*rpmotif.Motif, n int) error {
	bw := bufio.NewWriter(w)
	for _, m := range top(motifs, n) {
		fmt.Fprintln(bw, m)
	}
	return bw.Flush()
}

func top(motifs []*rpmotif.Motif, n int) []*rpmotif.Motif {
	if n > 0 && n < len(motifs) {
		return motifs[:n]
	}
	return motifs
}

// WriteGroups writes canonical motifs in tab-delimited format.
func WriteGroups(w io.Writer, groups []*cluster.Group, header bool) error {
	bw := bufio.NewWriter(w)

	if header {
		fmt.Fprintf(bw, "consensus\tsupport\tmembers\n")
	}

	var buf strings.Builder
	for _, g := range groups {
		buf.Reset()
		for j, i := range g.Members {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(i))
		}
		fmt.Fprintf(bw, "%s\t%d\t%s\n", g.Consensus, g.Support, buf.String())
	}

	return bw.Flush()
}

// DumpBuckets writes all buckets of every iteration, keys are sorted.
func DumpBuckets(w io.Writer, maps []rpmotif.BucketMap) error {
	bw := bufio.NewWriter(w)

	for i, m := range maps {
		keys := make([]string, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintf(bw, "# iteration %d, %d buckets\n", i+1, len(keys))
		for _, key := range keys {
			fmt.Fprintf(bw, "%s\t%v\n", key, m[key])
		}
	}

	return bw.Flush()
}

// DumpFriendLists writes friend lists of positions having friends.
func DumpFriendLists(w io.Writer, friends rpmotif.FriendLists) error {
	bw := bufio.NewWriter(w)

	for i, list := range friends {
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(bw, "%d\t%v\n", i, list)
	}

	return bw.Flush()
}

// Digest returns a fingerprint of a ranked result, covering positions,
// scores, and friends of all motifs in order.
func Digest(motifs []*rpmotif.Motif) uint64 {
	h := xxhash.New()
	buf := make([]byte, 8)
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf, v)
		h.Write(buf)
	}

	for _, m := range motifs {
		put(uint64(m.Index))
		put(math.Float64bits(m.Score()))
		put(uint64(len(m.Friends)))
		for _, f := range m.Friends {
			put(uint64(f))
		}
		put(uint64(len(m.CloseFriends)))
		for _, f := range m.CloseFriendIndexes() {
			put(uint64(f))
			put(uint64(m.CloseFriends[f]))
		}
	}

	return h.Sum64()
}
