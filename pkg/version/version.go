// Package version exposes build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/goliatone/gitweb/pkg/version.Version=v1.2.0"
package version

import (
	"fmt"
	"io"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Print writes a single line of build information to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "gitweb %s (commit %s, built %s, %s/%s)\n",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
	return err
}
