// Package repositories defines the repository interfaces for catalog
// entities. These abstract the persistence details so the core engine stays
// decoupled from the database.
package repositories

import (
	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
)

type ArtworkRepository interface {
	FindByID(id string) (*catalog.ArtworkRecord, error)
	FindAll() ([]*catalog.ArtworkRecord, error)
	FindByCategory(category catalog.Category) ([]*catalog.ArtworkRecord, error)
	Store(artwork *catalog.ArtworkRecord) error
	Update(artwork *catalog.ArtworkRecord) error
	Delete(id string) error
	Count() (int, error)
}

type SlideRepository interface {
	FindAll() ([]*catalog.SlideRecord, error)
	Replace(slides []*catalog.SlideRecord) error
}
