package username

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namePattern = regexp.MustCompile(`^[a-z]+-[a-z]+-([0-9]+)$`)

func TestGenerateShape(t *testing.T) {
	for i := 0; i < 1000; i++ {
		name := Generate()
		require.NotEmpty(t, name)

		matches := namePattern.FindStringSubmatch(name)
		require.NotNil(t, matches, "unexpected name %q", name)

		number, err := strconv.Atoi(matches[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, number, 1)
		assert.LessOrEqual(t, number, 9999)
	}
}

func TestGenerateUsesWordLists(t *testing.T) {
	adjectiveSet := make(map[string]bool, len(adjectives))
	for _, w := range adjectives {
		adjectiveSet[w] = true
	}
	nounSet := make(map[string]bool, len(nouns))
	for _, w := range nouns {
		nounSet[w] = true
	}

	for i := 0; i < 200; i++ {
		parts := strings.SplitN(Generate(), "-", 3)
		require.Len(t, parts, 3)
		assert.True(t, adjectiveSet[parts[0]], "unknown adjective %q", parts[0])
		assert.True(t, nounSet[parts[1]], "unknown noun %q", parts[1])
	}
}

func TestPickEmptyList(t *testing.T) {
	assert.Equal(t, "friend", pick(nil, "friend"))
}
