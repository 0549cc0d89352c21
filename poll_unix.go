//go:build unix && !linux

package poll

import (
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// poll(2) takes a millisecond timeout bounded by the width of a C int.
const maxMillisPerCall = int64(math.MaxInt32)

func pollReadable(fd uintptr, timeout time.Duration) (bool, error) {
	pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	if timeout < 0 {
		n, err := unix.Poll(pollFds, -1)
		if err == unix.EINTR {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return n != 0, nil
	}

	remaining := timeout.Milliseconds()
	for remaining > maxMillisPerCall {
		remaining -= maxMillisPerCall
		n, err := unix.Poll(pollFds, math.MaxInt32)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		if n != 0 {
			return true, nil
		}
	}

	n, err := unix.Poll(pollFds, int(remaining))
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
