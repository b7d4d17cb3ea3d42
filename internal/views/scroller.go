package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"premrishi/fitterm/internal/navigation"
)

const (
	// PixelsPerRow converts viewport rows into the pixel offsets the
	// navigation controller works in.
	PixelsPerRow = 16

	smoothScrollInterval = 16 * time.Millisecond
)

type smoothScrollMsg struct{}

// pageScroller resolves section ids to anchor rows recorded while the page
// is composed, and tracks the in-progress smooth scroll.
type pageScroller struct {
	anchors   map[navigation.SectionID]int
	target    int
	animating bool
	requested bool
}

func newPageScroller() *pageScroller {
	return &pageScroller{
		anchors: make(map[navigation.SectionID]int),
	}
}

func (s *pageScroller) setAnchors(anchors map[navigation.SectionID]int) {
	s.anchors = anchors
}

func (s *pageScroller) anchor(id navigation.SectionID) (int, bool) {
	row, ok := s.anchors[id]
	return row, ok
}

// ScrollTo records a smooth scroll towards id. Unknown ids are ignored.
func (s *pageScroller) ScrollTo(id navigation.SectionID) bool {
	row, ok := s.anchors[id]
	if !ok {
		return false
	}
	s.target = row
	s.requested = true
	return true
}

// start returns the tick that drives a freshly requested scroll, or nil if
// nothing was requested or an animation is already running.
func (s *pageScroller) start() tea.Cmd {
	if !s.requested {
		return nil
	}
	s.requested = false
	if s.animating {
		return nil
	}
	s.animating = true
	return smoothScrollTick()
}

// cancel stops the animation, e.g. when the user scrolls by hand.
func (s *pageScroller) cancel() {
	s.animating = false
	s.requested = false
}

func smoothScrollTick() tea.Cmd {
	return tea.Tick(smoothScrollInterval, func(time.Time) tea.Msg {
		return smoothScrollMsg{}
	})
}

// nextScrollStep moves current a third of the way to target, by at least
// one row.
func nextScrollStep(current, target int) int {
	diff := target - current
	if diff == 0 {
		return current
	}
	step := diff / 3
	if step == 0 {
		if diff > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return current + step
}

// clampOffset bounds a target row to what the viewport can actually show.
func clampOffset(target, totalLines, height int) int {
	maxOffset := totalLines - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if target > maxOffset {
		return maxOffset
	}
	if target < 0 {
		return 0
	}
	return target
}
