package fingerprint

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

// HostEnvironment probes the local host for the signals a terminal
// client can observe. Each probe is best-effort: anything the host
// does not expose is simply left out of the environment.
func HostEnvironment(userAgent string) *Environment {
	env := &Environment{
		Platform:            runtime.GOOS + "/" + runtime.GOARCH,
		UserAgent:           userAgent,
		HardwareConcurrency: runtime.NumCPU(),
	}

	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		if lines, err := strconv.Atoi(os.Getenv("LINES")); err == nil && lines > 0 {
			env.ScreenWidth = cols
			env.ScreenHeight = lines
		}
	}

	if tz := os.Getenv("TZ"); tz != "" {
		env.Timezone = tz
	} else if name, _ := time.Now().Zone(); name != "" {
		env.Timezone = name
	}

	if lang := os.Getenv("LC_ALL"); lang != "" {
		env.Language = lang
	} else if lang := os.Getenv("LANG"); lang != "" {
		env.Language = lang
	}

	return env
}
