package version

// Version is overridden at build time with -ldflags "-X keggmod/internal/version.Version=...".
var Version = "dev"
