// Package content provides catalog repositories
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/caching/interfaces"
	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/pkg/config"
)

const artworkColumns = `id, title, title_ka, title_ru, technique, technique_ka, technique_ru, category, size, year, image, description, position`

type ArtworkRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewArtworkRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *ArtworkRepository {
	return &ArtworkRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// EnsureSchema creates the artworks table if it does not exist. Position keeps
// the seed's authoring order, which is the order the gallery presents.
func (r *ArtworkRepository) EnsureSchema() error {
	query := `CREATE TABLE IF NOT EXISTS artworks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		title_ka TEXT NOT NULL DEFAULT '',
		title_ru TEXT NOT NULL DEFAULT '',
		technique TEXT NOT NULL DEFAULT '',
		technique_ka TEXT NOT NULL DEFAULT '',
		technique_ru TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		size TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		image TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	)`

	if _, err := r.db.Exec(query); err != nil {
		r.logger.Database().Error("Failed to create artworks table", "error", err.Error())
		return fmt.Errorf("failed to create artworks table: %w", err)
	}
	return nil
}

// SeedFromFile loads the JSON catalog seed into an empty artworks table.
// A non-empty table wins over the seed file.
func (r *ArtworkRepository) SeedFromFile(path string) (int, error) {
	count, err := r.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		r.logger.Database().Debug("Artworks table already populated, skipping seed", "count", count)
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog seed: %w", err)
	}

	var records []*catalog.ArtworkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	start := time.Now()
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	query := `INSERT INTO artworks (` + artworkColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	seeded := 0
	for i, a := range records {
		if _, err := tx.Exec(query, a.ID, a.Title, a.TitleKa, a.TitleRu, a.Technique, a.TechniqueKa, a.TechniqueRu,
			string(a.Category), a.Size, a.Year, a.Image, a.Description, i); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to seed artwork %s: %w", a.ID, err)
		}
		seeded++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	r.logger.Database().Info("Catalog seeded from file", "path", path, "seeded", seeded, "duration", time.Since(start))
	return seeded, nil
}

func (r *ArtworkRepository) FindByID(id string) (*catalog.ArtworkRecord, error) {
	if artwork, found := r.cache.GetArtwork(id); found {
		return artwork, nil
	}

	artwork, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if artwork == nil {
		return nil, nil
	}

	r.cache.SetArtwork(artwork)
	return artwork, nil
}

// FindAll retrieves every artwork in authoring order, cache-first.
func (r *ArtworkRepository) FindAll() ([]*catalog.ArtworkRecord, error) {
	if ids, found := r.cache.GetAllArtworkIDs(); found {
		return r.findByIDs(ids)
	}

	records, err := r.loadAllFromDB()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(records))
	for i, a := range records {
		ids[i] = a.ID
		r.cache.SetArtwork(a)
	}
	r.cache.SetAllArtworkIDs(ids)

	return records, nil
}

func (r *ArtworkRepository) FindByCategory(category catalog.Category) ([]*catalog.ArtworkRecord, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	if category == catalog.CategoryAll {
		return all, nil
	}

	var result []*catalog.ArtworkRecord
	for _, a := range all {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *ArtworkRepository) Store(artwork *catalog.ArtworkRecord) error {
	query := `INSERT INTO artworks (` + artworkColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM artworks))`

	start := time.Now()
	r.logger.Database().Debug("Executing artwork insert", "id", artwork.ID)

	_, err := r.db.Exec(query, artwork.ID, artwork.Title, artwork.TitleKa, artwork.TitleRu,
		artwork.Technique, artwork.TechniqueKa, artwork.TechniqueRu,
		string(artwork.Category), artwork.Size, artwork.Year, artwork.Image, artwork.Description)
	if err != nil {
		r.logger.Database().Error("Artwork insert failed", "error", err.Error(), "id", artwork.ID)
		return fmt.Errorf("failed to insert artwork: %w", err)
	}

	r.logger.Database().Info("Artwork insert completed", "id", artwork.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	r.cache.SetArtwork(artwork)
	r.cache.AddArtworkID(artwork.ID)
	return nil
}

func (r *ArtworkRepository) Update(artwork *catalog.ArtworkRecord) error {
	query := `UPDATE artworks SET title = ?, title_ka = ?, title_ru = ?, technique = ?, technique_ka = ?,
		technique_ru = ?, category = ?, size = ?, year = ?, image = ?, description = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing artwork update", "id", artwork.ID)

	_, err := r.db.Exec(query, artwork.Title, artwork.TitleKa, artwork.TitleRu,
		artwork.Technique, artwork.TechniqueKa, artwork.TechniqueRu,
		string(artwork.Category), artwork.Size, artwork.Year, artwork.Image, artwork.Description, artwork.ID)
	if err != nil {
		r.logger.Database().Error("Artwork update failed", "error", err.Error(), "id", artwork.ID)
		return fmt.Errorf("failed to update artwork: %w", err)
	}

	r.logger.Database().Info("Artwork update completed", "id", artwork.ID, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	r.cache.SetArtwork(artwork)
	return nil
}

func (r *ArtworkRepository) Delete(id string) error {
	query := `DELETE FROM artworks WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing artwork delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Artwork delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	r.logger.Database().Info("Artwork delete completed", "id", id, "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	r.cache.InvalidateArtwork(id)
	r.cache.RemoveArtworkID(id)
	return nil
}

func (r *ArtworkRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM artworks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count artworks: %w", err)
	}
	return count, nil
}

func (r *ArtworkRepository) findByIDs(ids []string) ([]*catalog.ArtworkRecord, error) {
	result := make([]*catalog.ArtworkRecord, 0, len(ids))
	var missing []string

	for _, id := range ids {
		if artwork, found := r.cache.GetArtwork(id); found {
			result = append(result, artwork)
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) == 0 {
		return result, nil
	}

	// Cache entries went missing mid-list. Reload everything so the
	// authoring order stays intact.
	records, err := r.loadAllFromDB()
	if err != nil {
		return nil, err
	}
	for _, a := range records {
		r.cache.SetArtwork(a)
	}
	return records, nil
}

func (r *ArtworkRepository) loadFromDB(id string) (*catalog.ArtworkRecord, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading artwork from database", "id", id)

	row := r.db.QueryRow(query, id)
	artwork, err := scanArtwork(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan artwork", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan artwork: %w", err)
	}

	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return artwork, nil
}

func (r *ArtworkRepository) loadAllFromDB() ([]*catalog.ArtworkRecord, error) {
	query := `SELECT ` + artworkColumns + ` FROM artworks ORDER BY position`

	start := time.Now()
	r.logger.Database().Debug("Loading all artworks from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query artworks", "error", err.Error())
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	defer rows.Close()

	var records []*catalog.ArtworkRecord
	for rows.Next() {
		artwork, err := scanArtwork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		records = append(records, artwork)
	}

	r.logger.Database().Info("Loaded artworks from database", "count", len(records), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtwork(row rowScanner) (*catalog.ArtworkRecord, error) {
	var artwork catalog.ArtworkRecord
	var category string
	var position int

	err := row.Scan(&artwork.ID, &artwork.Title, &artwork.TitleKa, &artwork.TitleRu,
		&artwork.Technique, &artwork.TechniqueKa, &artwork.TechniqueRu,
		&category, &artwork.Size, &artwork.Year, &artwork.Image, &artwork.Description, &position)
	if err != nil {
		return nil, err
	}

	artwork.Category, _ = catalog.ParseCategory(category)
	return &artwork, nil
}
