package common

import (
	"time"

	"github.com/briandowns/spinner"
)

// StartProgressSpinner shows a spinner with the given prefix until the
// returned stop function is called.
func StartProgressSpinner(prefix string) (stop func()) {
	s := spinner.New(spinner.CharSets[14], time.Millisecond*100)
	s.Prefix = prefix + " "
	s.Start()

	return s.Stop
}
