package testutils

import (
	"testing"
	"time"
)

var (
	WaitTimeout = 5 * time.Second
)

// WithTimeout polls f until it returns an empty string. The test fails with the last returned
// message once WaitTimeout has passed.
func WithTimeout(t testing.TB, f func() string) {
	t.Helper()

	deadline := time.After(WaitTimeout)
	lastErr := f()
	for lastErr != "" {
		select {
		case <-deadline:
			t.Fatalf("did not reach expected state after %v: %s", WaitTimeout, lastErr)
			return
		case <-time.After(10 * time.Millisecond):
			lastErr = f()
		}
	}
}
