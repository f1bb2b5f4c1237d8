package build

import "fmt"

// Overridden at build time with -ldflags.
var (
	ShortVersion = "0.0.0"
	GitRef       = "unknown"
)

var LongVersion = fmt.Sprintf("%s (ref: %s)", ShortVersion, GitRef)
