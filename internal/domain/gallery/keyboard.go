package gallery

// Key is the logical keyboard surface the gallery responds to.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
	KeyEscape     Key = "Escape"
)

// ItemsPerRow derives the grid row width from the viewport width. The
// thresholds match the gallery's responsive layout breakpoints.
func ItemsPerRow(viewportWidth int) int {
	switch {
	case viewportWidth <= 480:
		return 1
	case viewportWidth <= 768:
		return 2
	case viewportWidth <= 1024:
		return 3
	default:
		return 4
	}
}

// GridMove maps an arrow/Home/End key to a new index within a grid of count
// items laid out itemsPerRow wide. Moves past an edge stay put: the grid
// does not wrap, unlike the lightbox.
func GridMove(index, count, itemsPerRow int, key Key) int {
	if count == 0 {
		return 0
	}
	switch key {
	case KeyArrowRight:
		if index < count-1 {
			return index + 1
		}
	case KeyArrowLeft:
		if index > 0 {
			return index - 1
		}
	case KeyArrowDown:
		if index+itemsPerRow < count {
			return index + itemsPerRow
		}
	case KeyArrowUp:
		if index-itemsPerRow >= 0 {
			return index - itemsPerRow
		}
	case KeyHome:
		return 0
	case KeyEnd:
		return count - 1
	}
	return index
}

// HandleKey routes a key event against the current view state: arrows move
// grid focus, Enter/Space open the lightbox on the focused item, Escape
// closes an open lightbox. Returns true when the event changed any state.
func (c *Controller) HandleKey(key Key, viewportWidth int) bool {
	switch key {
	case KeyEnter, KeySpace:
		if c.lightbox.open || c.visibleCount == 0 {
			return false
		}
		item := c.filteredItems[c.focusIndex]
		return c.OpenLightbox(item.ID, item.ID)
	case KeyEscape:
		if !c.lightbox.open {
			return false
		}
		c.CloseLightbox()
		return true
	case KeyArrowLeft, KeyArrowRight:
		// An open lightbox captures the horizontal arrows for prev/next.
		if c.lightbox.open {
			if key == KeyArrowLeft {
				return c.LightboxPrev()
			}
			return c.LightboxNext()
		}
		fallthrough
	case KeyArrowUp, KeyArrowDown, KeyHome, KeyEnd:
		next := GridMove(c.focusIndex, c.visibleCount, ItemsPerRow(viewportWidth), key)
		if next == c.focusIndex {
			return false
		}
		c.focusIndex = next
		c.emitView()
		return true
	}
	return false
}

// FocusIndex returns the grid focus position within the visible items.
func (c *Controller) FocusIndex() int { return c.focusIndex }
