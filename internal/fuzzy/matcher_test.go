package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExact(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{"lowercase", "mpl-themes-blue", "mpl-themes-blue"},
		{"mixed case", "MPL-Themes-Blue", "mpl-themes-blue"},
		{"map part of scoped name", "c_gray", "mpl-themes-blue:c_gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 100, Score(tt.pattern, tt.text))
		})
	}
}

func TestScoreNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{"empty pattern", "", "c_gray"},
		{"empty text", "gray", ""},
		{"longer than text", "c_gray_r", "c_gray"},
		{"not a subsequence", "purple", "c_blue_yellow"},
		{"out of order", "yarg", "c_gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, Score(tt.pattern, tt.text))
		})
	}
}

func TestScoreOrdering(t *testing.T) {
	compact := Score("gray", "c_gray")
	scattered := Score("gray", "c_green_yellow_ray")

	assert.Greater(t, compact, scattered)
	assert.Greater(t, scattered, 0)
	assert.Less(t, compact, 100)

	assert.Greater(t, Score("blue", "blue_yellow"), Score("blue", "c_red_blue"), "prefix beats suffix")
}

func TestRank(t *testing.T) {
	candidates := []string{
		"mpl-themes-blue:c_red_yellow",
		"mpl-themes-blue:c_gray",
		"mpl-themes-blue:c_blue_yellow",
		"mpl-themes-green:c_gray",
	}

	results := Rank("gray", candidates, 0)
	assert.Len(t, results, 2)
	assert.Equal(t, "mpl-themes-blue:c_gray", results[0].Text, "ties keep input order")
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, "mpl-themes-green:c_gray", results[1].Text)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}

	assert.Empty(t, Rank("gray", candidates, 101))
}

func TestSuggest(t *testing.T) {
	names := []string{"mpl-themes-blue", "mpl-themes-green", "ocean"}

	assert.Equal(t, []string{"mpl-themes-blue"}, Suggest("mpl-themes-blu", names, 3))
	assert.Len(t, Suggest("mpl", names, 1), 1)
	assert.Empty(t, Suggest("zzz", names, 3))
}
