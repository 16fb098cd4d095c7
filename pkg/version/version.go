package version

// Version is overridden at build time with
// -ldflags "-X github.com/c9s/bstmap/pkg/version.Version=..."
var Version = "v0.1.0-dev"
