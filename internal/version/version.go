// Package version holds the release string, overridable at link time:
//
//	go build -ldflags "-X contigfilter/internal/version.Version=1.2.0"
package version

var Version = "0.4.0"
