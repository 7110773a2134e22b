// Package username assigns throwaway display names to submissions.
// Names are decoupled from the visitor fingerprint on purpose: the
// same visitor appears under a different name each time, and repeated
// names across submissions are acceptable.
package username

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"calm", "gentle", "peaceful", "serene", "quiet",
	"kind", "warm", "bright", "soft", "brave",
	"wise", "hopeful", "caring", "strong", "gentle",
	"honest", "loyal", "patient", "creative", "curious",
}

var nouns = []string{
	"cloud", "star", "wave", "breeze", "sunset",
	"moon", "river", "forest", "ocean", "mountain",
	"valley", "meadow", "butterfly", "bird", "tree",
	"flower", "stone", "crystal", "light", "shadow",
}

// Generate returns a random name of the form "adjective-noun-number"
// with the number in [1, 9999]. It never fails.
func Generate() string {
	adjective := pick(adjectives, "calm")
	noun := pick(nouns, "friend")
	number := rand.Intn(9999) + 1

	return fmt.Sprintf("%s-%s-%d", adjective, noun, number)
}

func pick(words []string, fallback string) string {
	if len(words) == 0 {
		return fallback
	}
	i := rand.Intn(len(words))
	if i < 0 || i >= len(words) {
		return fallback
	}
	return words[i]
}
