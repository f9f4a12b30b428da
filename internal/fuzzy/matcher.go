// Package fuzzy ranks theme and color map names against a typed pattern.
package fuzzy

import (
	"sort"
	"strings"
)

// Result is one candidate and its score in [0,100].
type Result struct {
	Text  string
	Score int
	Index int
}

// Score rates how well pattern matches text as a case-insensitive
// subsequence. 100 is an exact match, 0 no match. For scoped names
// ("<theme>:<map>") the part after the last colon is tried as well.
func Score(pattern, text string) int {
	best := score(pattern, text)
	if i := strings.LastIndexByte(text, ':'); i >= 0 {
		best = max(best, score(pattern, text[i+1:]))
	}
	return best
}

func score(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))
	if string(p) == string(t) {
		return 100
	}
	if len(p) > len(t) {
		return 0
	}

	positions := subsequence(p, t)
	if positions == nil {
		return 0
	}

	s := 40.0
	s += 25 * float64(len(p)) / float64(len(t))
	if positions[0] == 0 {
		s += 15
	}
	s += 20 * float64(longestRun(positions)) / float64(len(p))

	boundaries, gaps := 0, 0
	for i, pos := range positions {
		if pos == 0 || isBoundary(t[pos-1]) {
			boundaries++
		}
		if i > 0 && pos != positions[i-1]+1 {
			gaps++
		}
	}
	s += 10 * float64(boundaries) / float64(len(p))
	s -= 2 * float64(gaps)

	// only an exact match scores 100
	return min(99, max(1, int(s)))
}

// leftmost positions of p in t, or nil
func subsequence(p, t []rune) []int {
	positions := make([]int, 0, len(p))
	j := 0
	for i := 0; i < len(t) && j < len(p); i++ {
		if t[i] == p[j] {
			positions = append(positions, i)
			j++
		}
	}
	if j < len(p) {
		return nil
	}
	return positions
}

func longestRun(positions []int) int {
	run, best := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			run++
			best = max(best, run)
		} else {
			run = 1
		}
	}
	return best
}

func isBoundary(r rune) bool {
	switch r {
	case ' ', '-', '_', '/', ':', '.':
		return true
	}
	return false
}

// Rank scores every candidate and returns those at or above threshold, best
// first. Ties keep input order.
func Rank(pattern string, candidates []string, threshold int) []Result {
	results := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		if s := Score(pattern, c); s > 0 && s >= threshold {
			results = append(results, Result{Text: c, Score: s, Index: i})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Suggest returns up to limit candidate names resembling pattern.
func Suggest(pattern string, candidates []string, limit int) []string {
	ranked := Rank(pattern, candidates, 50)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Text
	}
	return out
}
