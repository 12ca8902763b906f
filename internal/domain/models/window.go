package models

import "fmt"

// Window is the user-chosen visible time span for the historical chart.
//
// Values are totally ordered by span: WindowOneYear is the narrowest and
// WindowAll the widest. The zoom gesture steps one Window at a time, and
// the history fetch maps each Window to an upstream period string.
type Window int

const (
	WindowOneYear Window = iota
	WindowFiveYear
	WindowTenYear
	WindowAll
)

// DefaultWindow is the span applied when a symbol is first selected.
// Switching symbols resets the selector back to this value.
const DefaultWindow = WindowAll

// Years returns the number of calendar years covered by the window,
// or 0 for WindowAll (unbounded).
func (w Window) Years() int {
	switch w {
	case WindowOneYear:
		return 1
	case WindowFiveYear:
		return 5
	case WindowTenYear:
		return 10
	default:
		return 0
	}
}

// Period returns the upstream history period string for the window.
// WindowAll maps to "max"; the bounded windows pass through unchanged.
func (w Window) Period() string {
	switch w {
	case WindowOneYear:
		return "1y"
	case WindowFiveYear:
		return "5y"
	case WindowTenYear:
		return "10y"
	default:
		return "max"
	}
}

// String returns the period string; it doubles as the wire representation.
func (w Window) String() string {
	return w.Period()
}

// MarshalJSON encodes the window as its period string.
func (w Window) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.Period() + `"`), nil
}

// Wider returns the window one step closer to WindowAll.
// Already-widest input is returned unchanged.
func (w Window) Wider() Window {
	if w >= WindowAll {
		return WindowAll
	}
	return w + 1
}

// Narrower returns the window one step closer to WindowOneYear.
// Already-narrowest input is returned unchanged.
func (w Window) Narrower() Window {
	if w <= WindowOneYear {
		return WindowOneYear
	}
	return w - 1
}

// ParseWindow converts a period string ("1y", "5y", "10y", "max") into
// a Window.
//
// Returns:
//   - Window: the matching selector.
//   - error: if the string is not a known period.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "1y":
		return WindowOneYear, nil
	case "5y":
		return WindowFiveYear, nil
	case "10y":
		return WindowTenYear, nil
	case "max", "all":
		return WindowAll, nil
	default:
		return DefaultWindow, fmt.Errorf("unknown window %q", s)
	}
}
