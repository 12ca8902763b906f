// Package gesture interprets two-point touch input as discrete window
// selector transitions: pinching in widens the visible span one step,
// pinching out narrows it one step.
package gesture

import (
	"math"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// DefaultThreshold is the inter-point distance change, in touch
// coordinate units, required to trigger one window step.
const DefaultThreshold = 50.0

// Point is a single touch contact position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Controller is a state machine over the window selector. It is IDLE
// until exactly two simultaneous contacts start a gesture; while ACTIVE
// it compares the current inter-point distance against a reference
// distance and steps the selector once per threshold crossing.
//
// The reference distance resets to the current distance after every
// crossing, so a single continuous pinch yields one step per crossing
// rather than a runaway zoom.
//
// Controller is not safe for concurrent use; only one gesture stream is
// recognized at a time.
type Controller struct {
	threshold   float64
	window      models.Window
	zooming     bool
	refDistance float64
}

// NewController returns an IDLE controller starting at the given window.
// A non-positive threshold falls back to DefaultThreshold.
func NewController(start models.Window, threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Controller{threshold: threshold, window: start}
}

// Window returns the current window selector.
func (c *Controller) Window() models.Window {
	return c.window
}

// SetWindow replaces the selector, e.g. when the user picks a span
// through the window buttons instead of a gesture.
func (c *Controller) SetWindow(w models.Window) {
	c.window = w
}

// Zooming reports whether a two-point gesture is in progress.
func (c *Controller) Zooming() bool {
	return c.zooming
}

// Begin starts a gesture. The machine engages only on exactly two
// simultaneous contacts; any other contact count is ignored.
func (c *Controller) Begin(points []Point) {
	if len(points) != 2 {
		return
	}
	c.zooming = true
	c.refDistance = distance(points[0], points[1])
}

// Move processes a contact move. While ACTIVE with two contacts, a
// distance change beyond the threshold steps the selector: a shrinking
// distance (pinch-in) widens the window toward ALL, a growing distance
// (pinch-out) narrows it toward ONE_YEAR. Steps at the extremes are
// no-ops, but the reference distance still resets on every crossing.
//
// Returns the current window and whether this move changed it.
func (c *Controller) Move(points []Point) (models.Window, bool) {
	if !c.zooming || len(points) != 2 {
		return c.window, false
	}

	current := distance(points[0], points[1])
	delta := current - c.refDistance
	if math.Abs(delta) <= c.threshold {
		return c.window, false
	}

	before := c.window
	if delta < 0 {
		c.window = c.window.Wider()
	} else {
		c.window = c.window.Narrower()
	}
	c.refDistance = current

	return c.window, c.window != before
}

// End finishes the gesture once fewer than two contacts remain, clearing
// the reference distance and returning to IDLE.
func (c *Controller) End(points []Point) {
	if len(points) >= 2 {
		return
	}
	c.zooming = false
	c.refDistance = 0
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
