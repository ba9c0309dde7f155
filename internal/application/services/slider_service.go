package services

import (
	"fmt"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
	"github.com/artfolio/artfolio-go/internal/infrastructure/persistence/content"
)

// SliderConfig is the payload the homepage slider renders from.
type SliderConfig struct {
	Slides     []*catalog.SlideRecord `json:"slides"`
	AutoPlayMs int                    `json:"autoPlayMs"`
}

// SliderService serves the homepage hero slider.
type SliderService struct {
	slideRepo  *content.SlideRepository
	autoPlayMs int
}

// NewSliderService creates a new slider application service
func NewSliderService(slideRepo *content.SlideRepository, autoPlayMs int) *SliderService {
	return &SliderService{
		slideRepo:  slideRepo,
		autoPlayMs: autoPlayMs,
	}
}

// NormalizeIndex maps any integer onto a valid slide position, wrapping in
// both directions. An empty deck normalizes to 0.
func NormalizeIndex(index, total int) int {
	if total <= 0 {
		return 0
	}
	return ((index % total) + total) % total
}

// NextIndex returns the slide after current, wrapping past the last slide.
func (s *SliderService) NextIndex(current, total int) int {
	return NormalizeIndex(current+1, total)
}

// PrevIndex returns the slide before current, wrapping past the first slide.
func (s *SliderService) PrevIndex(current, total int) int {
	return NormalizeIndex(current-1, total)
}

// GotoIndex jumps to an arbitrary slide position, normalized onto the deck.
func (s *SliderService) GotoIndex(target, total int) int {
	return NormalizeIndex(target, total)
}

// GetConfig returns the slide set and autoplay interval.
func (s *SliderService) GetConfig() (*SliderConfig, error) {
	slides, err := s.slideRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load slides: %w", err)
	}

	return &SliderConfig{
		Slides:     slides,
		AutoPlayMs: s.autoPlayMs,
	}, nil
}

// ReplaceSlides swaps the whole slide set.
func (s *SliderService) ReplaceSlides(slides []*catalog.SlideRecord) error {
	if len(slides) == 0 {
		return fmt.Errorf("slide set cannot be empty")
	}
	for _, slide := range slides {
		if slide.Image == "" {
			return fmt.Errorf("slide %d has no image", slide.ID)
		}
	}
	return s.slideRepo.Replace(slides)
}
