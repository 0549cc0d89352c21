//go:build !unix && !windows

package poll

import (
	"time"

	E "github.com/sagernet/sing/common/exceptions"
)

func pollReadable(fd uintptr, timeout time.Duration) (bool, error) {
	return false, E.New("listener polling is not supported on this platform")
}
