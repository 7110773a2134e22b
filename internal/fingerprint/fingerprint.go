// Package fingerprint derives a stable, privacy-preserving identifier
// from client-observable signals. The identifier is a write-time
// provenance tag only: it is never stored server-side, never read back,
// and is not guaranteed stable across environment changes.
package fingerprint

import (
	"fmt"
	"strings"

	"whisperboard/internal/constants"
)

// Environment carries the observable signals a client can contribute.
// Every field is optional; zero values are omitted from the derivation
// rather than treated as errors.
type Environment struct {
	ScreenWidth         int
	ScreenHeight        int
	AvailWidth          int
	AvailHeight         int
	ColorDepth          int
	Timezone            string
	Language            string
	Platform            string
	UserAgent           string
	HardwareConcurrency int
	CanvasData          string
}

// Generate computes the fingerprint for env. It is a pure function of
// its input and never fails: a nil environment (no browser-like context
// available) yields a fixed sentinel so pre-render code paths can call
// it unconditionally.
func Generate(env *Environment) string {
	if env == nil {
		return constants.FingerprintSentinel
	}

	components := make([]string, 0, 9)

	if env.ScreenWidth > 0 && env.ScreenHeight > 0 {
		components = append(components, fmt.Sprintf("screen:%dx%d", env.ScreenWidth, env.ScreenHeight))
	}
	if env.AvailWidth > 0 && env.AvailHeight > 0 {
		components = append(components, fmt.Sprintf("avail:%dx%d", env.AvailWidth, env.AvailHeight))
	}
	if env.ColorDepth > 0 {
		components = append(components, fmt.Sprintf("colorDepth:%d", env.ColorDepth))
	}
	if env.Timezone != "" {
		components = append(components, "tz:"+env.Timezone)
	}
	if env.Language != "" {
		components = append(components, "lang:"+env.Language)
	}
	if env.Platform != "" {
		components = append(components, "platform:"+env.Platform)
	}
	if env.UserAgent != "" {
		components = append(components, "ua:"+HashString(env.UserAgent))
	}
	if env.HardwareConcurrency > 0 {
		components = append(components, fmt.Sprintf("cores:%d", env.HardwareConcurrency))
	}
	if env.CanvasData != "" {
		components = append(components, "canvas:"+HashString(env.CanvasData))
	}

	return HashString(strings.Join(components, "|"))
}
