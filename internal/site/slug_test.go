package site

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySlug(t *testing.T) {
	assert.Equal(t, "7", DisplaySlug("007"))
	assert.Equal(t, "7", DisplaySlug("7"))
	assert.Equal(t, "0", DisplaySlug("000"))
	assert.Equal(t, "120", DisplaySlug("120"))
	assert.Equal(t, "lab-a", DisplaySlug("lab-a"))
}

func TestSlugCandidates(t *testing.T) {
	// Literal first: a literal "7" row shadows the zero-padded legacy "007".
	assert.Equal(t, []string{"7", "007"}, SlugCandidates("7"))
	assert.Equal(t, []string{"007"}, SlugCandidates("007"))
	assert.Equal(t, []string{"1234"}, SlugCandidates("1234"))
	assert.Equal(t, []string{"lab-a"}, SlugCandidates("lab-a"))
}

func TestCompareSlugsOrdering(t *testing.T) {
	slugs := []string{"10", "2", "abc", "1"}
	sort.Slice(slugs, func(i, j int) bool {
		return CompareSlugs(slugs[i], slugs[j]) < 0
	})
	assert.Equal(t, []string{"1", "2", "10", "abc"}, slugs)
}

func TestCompareSlugsMixed(t *testing.T) {
	// Numeric always sorts before non-numeric, regardless of lexical order.
	assert.Negative(t, CompareSlugs("99", "a"))
	assert.Positive(t, CompareSlugs("a", "99"))
	assert.Zero(t, CompareSlugs("7", "007"))
	assert.Negative(t, CompareSlugs("abc", "abd"))
}
