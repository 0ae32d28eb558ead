package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrBrowserNotAvailable is matched by BrowserNotAvailableError.
	ErrBrowserNotAvailable = errors.New("browser not available")

	// ErrNotAbleToOpenSystemBrowser is returned when the OS default opener
	// fails.
	ErrNotAbleToOpenSystemBrowser = errors.New("not able to open system browser")
)

// BrowserNotAvailableError reports an explicit or $BROWSER command that
// could not be started.
type BrowserNotAvailableError struct {
	Command string
	Err     error
}

func (e *BrowserNotAvailableError) Error() string {
	return fmt.Sprintf("launcher: unable to open the given browser %q: %v", e.Command, e.Err)
}

func (e *BrowserNotAvailableError) Unwrap() error {
	return e.Err
}

func (e *BrowserNotAvailableError) Is(target error) bool {
	return target == ErrBrowserNotAvailable
}
