// Package poll provides readiness polling with timeout for listening
// sockets, backed by poll(2), ppoll(2) or WSAPoll depending on the target.
package poll

import (
	"syscall"
	"time"
)

// Forever requests an unbounded wait from Poll.
const Forever time.Duration = -1

// Poll reports whether an accept call on listener is expected to complete
// without blocking. A negative timeout blocks until the listener becomes
// readable or an OS error occurs, zero checks without waiting, and a
// positive timeout bounds the wait. Poll may return false before the full
// timeout has elapsed on a platform-dependent spurious wakeup.
//
// A true result does not guarantee a subsequent accept will not block if
// another caller consumes the pending connection first; callers that need
// a hard guarantee should additionally set the listener non-blocking.
func Poll(listener syscall.Conn, timeout time.Duration) (bool, error) {
	rawConn, err := listener.SyscallConn()
	if err != nil {
		return false, err
	}
	var (
		ready   bool
		pollErr error
	)
	err = rawConn.Control(func(fd uintptr) {
		ready, pollErr = pollReadable(fd, timeout)
	})
	if err != nil {
		return false, err
	}
	return ready, pollErr
}

// PollNonBlocking checks the listener for a pending connection without
// waiting. Equivalent to Poll(listener, 0).
func PollNonBlocking(listener syscall.Conn) (bool, error) {
	return Poll(listener, 0)
}

// PollUntilReady blocks until an accept call on listener is expected to
// complete without blocking, discarding spurious wakeups.
func PollUntilReady(listener syscall.Conn) error {
	for {
		ready, err := Poll(listener, Forever)
		if err != nil {
			return err
		}
		if ready {
			return nil
		}
	}
}
