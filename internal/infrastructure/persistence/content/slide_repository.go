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

type SlideRepository struct {
	db     *sql.DB
	cache  interfaces.ContentCache
	logger *logging.ChanneledLogger
}

func NewSlideRepository(db *sql.DB, cache interfaces.ContentCache, logger *logging.ChanneledLogger) *SlideRepository {
	return &SlideRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *SlideRepository) EnsureSchema() error {
	query := `CREATE TABLE IF NOT EXISTS slides (
		id INTEGER PRIMARY KEY,
		image TEXT NOT NULL,
		alt TEXT NOT NULL DEFAULT ''
	)`

	if _, err := r.db.Exec(query); err != nil {
		r.logger.Database().Error("Failed to create slides table", "error", err.Error())
		return fmt.Errorf("failed to create slides table: %w", err)
	}
	return nil
}

// SeedFromFile loads the JSON slider config into an empty slides table.
func (r *SlideRepository) SeedFromFile(path string) (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM slides`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count slides: %w", err)
	}
	if count > 0 {
		r.logger.Database().Debug("Slides table already populated, skipping seed", "count", count)
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read slider config: %w", err)
	}

	var slides []*catalog.SlideRecord
	if err := json.Unmarshal(data, &slides); err != nil {
		return 0, fmt.Errorf("failed to parse slider config: %w", err)
	}

	if err := r.Replace(slides); err != nil {
		return 0, err
	}
	return len(slides), nil
}

// FindAll retrieves all slides in id order, cache-first.
func (r *SlideRepository) FindAll() ([]*catalog.SlideRecord, error) {
	if slides, found := r.cache.GetSlides(); found {
		return slides, nil
	}

	query := `SELECT id, image, alt FROM slides ORDER BY id`

	start := time.Now()
	r.logger.Database().Debug("Loading slides from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query slides", "error", err.Error())
		return nil, fmt.Errorf("failed to query slides: %w", err)
	}
	defer rows.Close()

	var slides []*catalog.SlideRecord
	for rows.Next() {
		var slide catalog.SlideRecord
		if err := rows.Scan(&slide.ID, &slide.Image, &slide.Alt); err != nil {
			return nil, fmt.Errorf("failed to scan slide: %w", err)
		}
		slides = append(slides, &slide)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Database().Info("Loaded slides from database", "count", len(slides), "duration", time.Since(start))
	duration := time.Since(start)
	if duration > config.SlowQueryThreshold {
		r.logger.LogSlowQuery(query, duration, "system")
	}

	r.cache.SetSlides(slides)
	return slides, nil
}

// Replace swaps the whole slide set in one transaction.
func (r *SlideRepository) Replace(slides []*catalog.SlideRecord) error {
	start := time.Now()
	r.logger.Database().Debug("Replacing slide set", "count", len(slides))

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin slide transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM slides`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear slides: %w", err)
	}

	for _, slide := range slides {
		if _, err := tx.Exec(`INSERT INTO slides (id, image, alt) VALUES (?, ?, ?)`,
			slide.ID, slide.Image, slide.Alt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert slide %d: %w", slide.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit slide transaction: %w", err)
	}

	r.logger.Database().Info("Slide set replaced", "count", len(slides), "duration", time.Since(start))
	r.cache.SetSlides(slides)
	return nil
}
