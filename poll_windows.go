package poll

import (
	"math"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modws2_32   = windows.NewLazySystemDLL("ws2_32.dll")
	procWSAPoll = modws2_32.NewProc("WSAPoll")
)

// https://learn.microsoft.com/en-us/windows/win32/api/winsock2/ns-winsock2-wsapollfd
type wsaPollFd struct {
	fd      windows.Handle
	events  int16
	revents int16
}

const (
	pollRdNorm  = 0x0100
	socketError = -1
)

// WSAPoll takes a millisecond timeout bounded by the width of an INT.
const maxMillisPerCall = int64(math.MaxInt32)

// https://learn.microsoft.com/en-us/windows/win32/api/winsock2/nf-winsock2-wsapoll
func wsaPoll(pollFds []wsaPollFd, timeoutMillis int32) (int, error) {
	r1, _, _ := syscall.SyscallN(
		procWSAPoll.Addr(),
		uintptr(unsafe.Pointer(&pollFds[0])),
		uintptr(len(pollFds)),
		uintptr(timeoutMillis),
	)
	if int32(r1) == socketError {
		return 0, windows.WSAGetLastError()
	}
	return int(int32(r1)), nil
}

func pollReadable(fd uintptr, timeout time.Duration) (bool, error) {
	pollFds := []wsaPollFd{{fd: windows.Handle(fd), events: pollRdNorm}}

	if timeout < 0 {
		n, err := wsaPoll(pollFds, -1)
		if err != nil {
			return false, err
		}
		return n != 0, nil
	}

	remaining := timeout.Milliseconds()
	for remaining > maxMillisPerCall {
		remaining -= maxMillisPerCall
		n, err := wsaPoll(pollFds, math.MaxInt32)
		if err != nil {
			return false, err
		}
		if n != 0 {
			return true, nil
		}
	}

	n, err := wsaPoll(pollFds, int32(remaining))
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
