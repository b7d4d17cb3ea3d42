package navigation

// DefaultScrollThreshold is the offset, in pixels, past which the bar
// switches to its scrolled style.
const DefaultScrollThreshold = 50

// Scroller brings the section with the given id to the top of the
// viewport. It reports false, and does nothing, when no such section exists.
type Scroller interface {
	ScrollTo(id SectionID) bool
}

type State struct {
	IsScrolled       bool
	IsMobileMenuOpen bool
}

type Controller struct {
	state     State
	threshold int
	scroller  Scroller
	sub       *Subscription
}

func NewController(scroller Scroller) *Controller {
	return &Controller{
		threshold: DefaultScrollThreshold,
		scroller:  scroller,
	}
}

// SetThreshold changes the scrolled cut-off. Negative values are ignored.
func (c *Controller) SetThreshold(px int) {
	if px >= 0 {
		c.threshold = px
	}
}

func (c *Controller) Threshold() int {
	return c.threshold
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) IsScrolled() bool {
	return c.state.IsScrolled
}

func (c *Controller) IsMobileMenuOpen() bool {
	return c.state.IsMobileMenuOpen
}

// OnScroll records the latest vertical offset.
func (c *Controller) OnScroll(offsetY int) {
	c.state.IsScrolled = offsetY > c.threshold
}

func (c *Controller) ToggleMobileMenu() {
	c.state.IsMobileMenuOpen = !c.state.IsMobileMenuOpen
}

// Navigate scrolls to id and closes the mobile menu. A missing section is
// a silent miss; the menu is closed either way.
func (c *Controller) Navigate(id SectionID) {
	if c.scroller != nil {
		c.scroller.ScrollTo(id)
	}
	c.state.IsMobileMenuOpen = false
}

// Activate subscribes the controller to events. Calling it again while
// active is a no-op.
func (c *Controller) Activate(events *ScrollEvents) {
	if c.sub != nil || events == nil {
		return
	}
	c.sub = events.Subscribe(c.OnScroll)
}

// Deactivate releases the scroll subscription taken by Activate.
func (c *Controller) Deactivate() {
	c.sub.Close()
	c.sub = nil
}

func (c *Controller) IsActive() bool {
	return c.sub != nil
}
