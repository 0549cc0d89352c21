package poll

import (
	"time"

	E "github.com/sagernet/sing/common/exceptions"

	"golang.org/x/sys/unix"
)

func pollReadable(fd uintptr, timeout time.Duration) (bool, error) {
	pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	if timeout < 0 {
		n, err := unix.Ppoll(pollFds, nil, nil)
		if err == unix.EINTR {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return n != 0, nil
	}

	// Timespec fields narrow to int32 on 32-bit targets.
	timeSpec := unix.NsecToTimespec(timeout.Nanoseconds())
	if time.Duration(timeSpec.Nano()) != timeout {
		return false, E.New("timeout duration does not fit into timespec")
	}

	n, err := unix.Ppoll(pollFds, &timeSpec, nil)
	if err == unix.EINTR {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
