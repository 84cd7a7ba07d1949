package loader

import (
	"fmt"

	"RoomAllocator/internal/allocator"
)

// ErrParse wraps allocator.ErrInvalidInput: a loader failure is always a
// case of bad input, just caught earlier, at the file-parsing boundary
// instead of inside Allocate/Collector.Run. Handlers can check either
// sentinel with errors.Is and treat both as 400.
var ErrParse = fmt.Errorf("%w: malformed room/course input", allocator.ErrInvalidInput)

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
