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
	"fmt"
	"math"
	"sort"

	"github.com/twotwotwo/sorts"
)

// ScoreFunc computes the score of a motif from the numbers of
// ordinary friends and close friends.
type ScoreFunc func(nFriends, nCloseFriends int) float64

// AdditiveScore returns sqrt(nFriends) + nCloseFriends.
// It is non-zero as long as there is any friend.
func AdditiveScore(nFriends, nCloseFriends int) float64 {
	return math.Sqrt(float64(nFriends)) + float64(nCloseFriends)
}

// MultiplicativeScore returns sqrt(nFriends) * nCloseFriends.
func MultiplicativeScore(nFriends, nCloseFriends int) float64 {
	return math.Sqrt(float64(nFriends)) * float64(nCloseFriends)
}

// Motif is a candidate motif instance starting at Index.
// Friends are referred to by their start positions.
type Motif struct {
	Index int    // 0-based start position
	Seq   []byte // the substring, it shares the memory with the input sequence

	Friends      []int       // ordinary friends, ascending
	CloseFriends map[int]int // close friend -> number of shared buckets

	scoreFn ScoreFunc
	score   float64
	scoring bool // is score computed
}

// Score returns the score, which is computed only once.
func (m *Motif) Score() float64 {
	if m.scoring {
		return m.score
	}
	fn := m.scoreFn
	if fn == nil {
		fn = AdditiveScore
	}
	m.score = fn(len(m.Friends), len(m.CloseFriends))
	m.scoring = true
	return m.score
}

// CloseFriendIndexes returns the close friends in ascending order.
func (m *Motif) CloseFriendIndexes() []int {
	idxs := make([]int, 0, len(m.CloseFriends))
	for i := range m.CloseFriends {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs
}

func (m *Motif) String() string {
	return fmt.Sprintf("%s, index: %d, score: %.3f, friends: %d, close friends: %d",
		m.Seq, m.Index, m.Score(), len(m.Friends), len(m.CloseFriends))
}

// Motifs is a list of motifs, sorted by score in descending order,
// then by start position in ascending order.
type Motifs []*Motif

func (s Motifs) Len() int      { return len(s) }
func (s Motifs) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Motifs) Less(i, j int) bool {
	a, b := s[i].Score(), s[j].Score()
	if a == b {
		return s[i].Index < s[j].Index
	}
	return a > b
}

// BuildMotifs creates a motif for every position with friends,
// classifies its friends with the quorum, and returns motifs ranked by scores.
// score is nil for AdditiveScore.
//
// It returns ErrInvariantViolation if a position is a friend of itself,
// or a position with friends has no complete substring in data.
func BuildMotifs(data []byte, motifLength int, quorum int, friends FriendLists, score ScoreFunc) ([]*Motif, error) {
	if score == nil {
		score = AdditiveScore
	}

	motifs := make([]*Motif, 0, friends.Positions())
	for i, list := range friends {
		if len(list) == 0 {
			continue
		}
		if i+motifLength > len(data) {
			return nil, fmt.Errorf("%w: position %d has no complete substring of length %d",
				ErrInvariantViolation, i, motifLength)
		}

		ordinary, close := Classify(list, quorum)
		if _, ok := close[i]; ok {
			return nil, fmt.Errorf("%w: position %d is a friend of itself", ErrInvariantViolation, i)
		}
		if j := sort.SearchInts(ordinary, i); j < len(ordinary) && ordinary[j] == i {
			return nil, fmt.Errorf("%w: position %d is a friend of itself", ErrInvariantViolation, i)
		}

		m := &Motif{
			Index:        i,
			Seq:          data[i : i+motifLength : i+motifLength],
			Friends:      ordinary,
			CloseFriends: close,
			scoreFn:      score,
		}
		m.Score()
		motifs = append(motifs, m)
	}

	sorts.Quicksort(Motifs(motifs))

	return motifs, nil
}
