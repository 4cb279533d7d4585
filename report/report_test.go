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

package report

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/shenwei356/rpmotif"
	"github.com/shenwei356/rpmotif/cluster"
)

func testMotifs(t *testing.T) []*rpmotif.Motif {
	data := []byte("abcXYZabcXYZabcWWW")
	friends := make(rpmotif.FriendLists, 16)
	friends[0] = []int{6, 6, 12}
	friends[6] = []int{0, 0, 12}
	friends[12] = []int{0, 6}

	motifs, err := rpmotif.BuildMotifs(data, 3, 1, friends, nil)
	if err != nil {
		t.Fatal(err)
	}
	return motifs
}

func TestWriteTSV(t *testing.T) {
	motifs := testMotifs(t)

	var buf bytes.Buffer
	if err := WriteTSV(&buf, motifs, 2, true); err != nil {
		t.Error(err)
		return
	}

	expected := "rank\tindex\tmotif\tscore\tfriends\tclose_friends\tclose_friend_list\n" +
		"1\t0\tabc\t2.000\t1\t1\t6:2\n" +
		"2\t6\tabc\t2.000\t1\t1\t0:2\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestWriteText(t *testing.T) {
	motifs := testMotifs(t)

	var buf bytes.Buffer
	if err := WriteText(&buf, motifs, 0); err != nil {
		t.Error(err)
		return
	}

	expected := "abc, index: 0, score: 2.000, friends: 1, close friends: 1\n" +
		"abc, index: 6, score: 2.000, friends: 1, close friends: 1\n" +
		"abc, index: 12, score: 1.414, friends: 2, close friends: 0\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestWriteGroups(t *testing.T) {
	groups := []*cluster.Group{
		{Consensus: []byte("abc"), Members: []int{0, 6, 12}, Support: 3},
	}

	var buf bytes.Buffer
	if err := WriteGroups(&buf, groups, false); err != nil {
		t.Error(err)
		return
	}
	if buf.String() != "abc\t3\t0,6,12\n" {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestDumps(t *testing.T) {
	maps := []rpmotif.BucketMap{{"XY": {3, 9}, "ab": {0, 6, 12}}}

	var buf bytes.Buffer
	if err := DumpBuckets(&buf, maps); err != nil {
		t.Error(err)
		return
	}
	expected := "# iteration 1, 2 buckets\nXY\t[3 9]\nab\t[0 6 12]\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}

	buf.Reset()
	if err := DumpFriendLists(&buf, rpmotif.Aggregate(maps, 2)); err != nil {
		t.Error(err)
		return
	}
	expected = "0\t[6 12]\n3\t[9]\n6\t[0 12]\n9\t[3]\n12\t[0 6]\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestDigest(t *testing.T) {
	data := make([]byte, 1500)
	r := rand.New(rand.NewSource(1))
	for i := range data {
		data[i] = "ACGT"[r.Intn(4)]
	}

	opt := rpmotif.DefaultOptions
	opt.Seed = 5

	digests := make([]uint64, 2)
	for i := range digests {
		motifs, err := rpmotif.Discover(context.Background(), data, &opt)
		if err != nil {
			t.Error(err)
			return
		}
		digests[i] = Digest(motifs)
	}
	if digests[0] != digests[1] {
		t.Errorf("digests differ with the same seed: %x vs %x", digests[0], digests[1])
	}

	if Digest(testMotifs(t)) == Digest(testMotifs(t)[:2]) {
		t.Errorf("digests of different results should differ")
	}
}
