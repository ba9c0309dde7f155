package gallery

import "github.com/artfolio/artfolio-go/internal/domain/entities/catalog"

// View is the snapshot handed to the presentation layer after every state
// change. VisibleItems is always the first VisibleCount entries of the
// filtered result set, in catalog order.
type View struct {
	State         CatalogState              `json:"state"`
	Filter        catalog.Category          `json:"filter"`
	SearchText    string                    `json:"searchText"`
	VisibleCount  int                       `json:"visibleCount"`
	TotalFiltered int                       `json:"totalFiltered"`
	VisibleItems  []*catalog.ArtworkRecord  `json:"visibleItems"`
	FocusIndex    int                       `json:"focusIndex"`
	Generation    uint64                    `json:"generation"`
}

// LightboxView describes the open lightbox for rendering.
type LightboxView struct {
	Record *catalog.ArtworkRecord `json:"record"`
	Index  int                    `json:"index"`
	Total  int                    `json:"total"`
}

// Listener receives the engine's output events. Implementations must not
// call back into the controller from inside a notification.
type Listener interface {
	ViewChanged(v View)
	LightboxChanged(v LightboxView)
	LightboxClosed(restoreFocus string)
	ResultCountChanged(count int)
}

// NopListener discards every event. Useful as a default and in tests.
type NopListener struct{}

func (NopListener) ViewChanged(View)                 {}
func (NopListener) LightboxChanged(LightboxView)     {}
func (NopListener) LightboxClosed(string)            {}
func (NopListener) ResultCountChanged(int)           {}
