package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisperboard/internal/constants"
)

func fullEnvironment() *Environment {
	return &Environment{
		ScreenWidth:         1920,
		ScreenHeight:        1080,
		AvailWidth:          1920,
		AvailHeight:         1040,
		ColorDepth:          24,
		Timezone:            "Europe/Paris",
		Language:            "fr-FR",
		Platform:            "linux/amd64",
		UserAgent:           "Mozilla/5.0",
		HardwareConcurrency: 8,
		CanvasData:          "data:image/png;base64,AAAA",
	}
}

func TestGenerateNilEnvironment(t *testing.T) {
	assert.Equal(t, constants.FingerprintSentinel, Generate(nil))
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(fullEnvironment())
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Generate(fullEnvironment()))
	}
}

func TestGenerateIsBase36(t *testing.T) {
	fp := Generate(fullEnvironment())
	require.NotEmpty(t, fp)
	for _, r := range fp {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z'),
			"unexpected character %q in fingerprint %q", r, fp)
	}
}

func TestGenerateMissingSignals(t *testing.T) {
	// A sparse environment still produces a fingerprint; absent signals
	// change the value but never fail the derivation.
	sparse := &Environment{Language: "en-US"}
	fp := Generate(sparse)
	assert.NotEmpty(t, fp)
	assert.NotEqual(t, constants.FingerprintSentinel, fp)
	assert.NotEqual(t, Generate(fullEnvironment()), fp)
}

func TestGenerateEmptyEnvironment(t *testing.T) {
	// All signals absent reduces to hashing the empty join.
	assert.Equal(t, "0", Generate(&Environment{}))
}

func TestGenerateDiffersAcrossEnvironments(t *testing.T) {
	other := fullEnvironment()
	other.ScreenWidth = 2560
	other.ScreenHeight = 1440

	assert.NotEqual(t, Generate(fullEnvironment()), Generate(other))
}

func TestHostEnvironment(t *testing.T) {
	env := HostEnvironment("boardctl/test")
	require.NotNil(t, env)

	assert.Equal(t, "boardctl/test", env.UserAgent)
	assert.NotEmpty(t, env.Platform)
	assert.Greater(t, env.HardwareConcurrency, 0)

	fp := Generate(env)
	assert.NotEmpty(t, fp)
	assert.NotEqual(t, constants.FingerprintSentinel, fp)
}
