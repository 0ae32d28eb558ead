package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Exit codes. 1 through 5 are kept stable for scripts written against
// earlier releases.
const (
	ExitSuccess                    = 0 // Successful execution
	ExitNotInAGitRepository        = 1 // No repository encloses the working directory
	ExitNoRemoteMatching           = 2 // The requested remote does not exist
	ExitNoRemoteAvailable          = 3 // The remote has no URL
	ExitNotAbleToOpenSystemBrowser = 4 // The OS default browser failed to open
	ExitBrowserNotAvailable        = 5 // The given browser command could not be started
	ExitUnableToGetRemoteParts     = 6 // The remote URL could not be parsed
	ExitUnknownProvider            = 7 // The view is unsupported on an unknown host
	ExitConfigError                = 8 // Configuration or flag usage error
	ExitGenericError               = 9 // Anything else
)

func main() {
	if err := execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// execute is the main entry point that sets up and runs the CLI
func execute() error {
	return newRootCommand().Execute()
}

// reportError prints err to w behind a red "gitweb:" prefix. Colour is
// dropped automatically when w is not a terminal.
func reportError(w io.Writer, err error) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("gitweb:")

	if cliErr, ok := err.(*CLIError); ok {
		fmt.Fprintf(w, "%s %s\n", prefix, cliErr.Message)
		if cliErr.Cause != nil {
			fmt.Fprintf(w, "  Cause: %v\n", cliErr.Cause)
		}
		return
	}

	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
