package gallery

// lightboxState tracks the modal viewer. The index points into the visible
// items prefix, never into the full catalog, so it must be reconciled
// whenever the visible set changes underneath an open lightbox.
type lightboxState struct {
	open         bool
	currentIndex int
	currentID    string
	lastFocused  string
}

// LightboxOpen reports whether the lightbox is showing.
func (c *Controller) LightboxOpen() bool { return c.lightbox.open }

// LightboxIndex returns the current visible-items index, or -1 when closed.
func (c *Controller) LightboxIndex() int {
	if !c.lightbox.open {
		return -1
	}
	return c.lightbox.currentIndex
}

// OpenLightbox opens the viewer on the visible item with the given id,
// remembering restoreFocus as the opaque "return focus here on close"
// reference. Opening is rejected when the id is not currently visible or the
// visible set is empty.
func (c *Controller) OpenLightbox(id, restoreFocus string) bool {
	idx := c.visibleIndexOf(id)
	if idx < 0 {
		return false
	}
	c.lightbox.open = true
	c.lightbox.currentIndex = idx
	c.lightbox.currentID = id
	c.lightbox.lastFocused = restoreFocus
	c.emitLightbox()
	return true
}

// LightboxNext advances to the next visible item, wrapping past the end.
func (c *Controller) LightboxNext() bool {
	if !c.lightbox.open || c.visibleCount == 0 {
		return false
	}
	c.lightbox.currentIndex = (c.lightbox.currentIndex + 1) % c.visibleCount
	c.lightbox.currentID = c.filteredItems[c.lightbox.currentIndex].ID
	c.emitLightbox()
	return true
}

// LightboxPrev steps to the previous visible item, wrapping before the start.
func (c *Controller) LightboxPrev() bool {
	if !c.lightbox.open || c.visibleCount == 0 {
		return false
	}
	c.lightbox.currentIndex = (c.lightbox.currentIndex - 1 + c.visibleCount) % c.visibleCount
	c.lightbox.currentID = c.filteredItems[c.lightbox.currentIndex].ID
	c.emitLightbox()
	return true
}

// CloseLightbox closes the viewer and hands the focus-restore reference back
// to the listener.
func (c *Controller) CloseLightbox() {
	if !c.lightbox.open {
		return
	}
	restore := c.lightbox.lastFocused
	c.lightbox = lightboxState{}
	c.listener.LightboxClosed(restore)
}

// LightboxView returns the current lightbox snapshot, or ok=false when closed.
func (c *Controller) LightboxView() (LightboxView, bool) {
	if !c.lightbox.open || c.lightbox.currentIndex >= c.visibleCount {
		return LightboxView{}, false
	}
	return LightboxView{
		Record: c.filteredItems[c.lightbox.currentIndex],
		Index:  c.lightbox.currentIndex,
		Total:  c.visibleCount,
	}, true
}

// reconcileLightbox keeps an open lightbox valid after the visible set
// changed. The current record is re-resolved by id; if it dropped out of the
// visible set the index clamps to the nearest valid position, and if nothing
// is visible anymore the lightbox force-closes.
func (c *Controller) reconcileLightbox() {
	if !c.lightbox.open {
		return
	}
	if c.visibleCount == 0 {
		c.CloseLightbox()
		return
	}
	if idx := c.visibleIndexOf(c.lightbox.currentID); idx >= 0 {
		c.lightbox.currentIndex = idx
	} else {
		if c.lightbox.currentIndex >= c.visibleCount {
			c.lightbox.currentIndex = c.visibleCount - 1
		}
		c.lightbox.currentID = c.filteredItems[c.lightbox.currentIndex].ID
	}
	c.emitLightbox()
}

// visibleIndexOf resolves an id against the visible items prefix.
func (c *Controller) visibleIndexOf(id string) int {
	for i := 0; i < c.visibleCount; i++ {
		if c.filteredItems[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) emitLightbox() {
	if v, ok := c.LightboxView(); ok {
		c.listener.LightboxChanged(v)
	}
}
