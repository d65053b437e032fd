package version

// Version is the release identifier. Set it through ldflags for real builds:
// go build -ldflags "-X github.com/uga-caes/docsite/internal/version.Version=v1.4.0".
var Version = "unknown"

// Remaining build metadata, injected the same way.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
