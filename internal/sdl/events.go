package sdl

import (
	"time"
	"unsafe"
)

// EventType is an SDL_EventType. Only the events the chrome reacts to are
// named; everything else passes through as an unknown value.
type EventType uint32

const (
	EventQuit                      EventType = 0x100
	EventSystemThemeChanged        EventType = 0x108
	EventWindowExposed             EventType = 0x204
	EventWindowPixelSizeChanged    EventType = 0x207
	EventWindowDisplayScaleChanged EventType = 0x214
)

// Event mirrors the 128-byte SDL_Event union. The chrome only inspects the
// type tag.
type Event struct {
	Type EventType
	_    [124]byte
}

// WaitEventTimeout blocks until the next event or until the timeout
// elapses, whichever comes first. Returns false on timeout. The bounded
// wait keeps the cycle observing external changes (like the OS theme)
// without busy-polling.
func WaitEventTimeout(timeout time.Duration) (Event, bool) {
	var ev Event
	ok := fnWaitEventTimeout(uintptr(unsafe.Pointer(&ev)), int32(timeout.Milliseconds()))
	return ev, ok
}
