// Package media provides image processing utilities
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/artfolio/artfolio-go/internal/infrastructure/observability/logging"
	"github.com/artfolio/artfolio-go/pkg/config"
)

var binaryPattern = regexp.MustCompile(`^data:image/\w+;base64,`)

// ImageProcessor handles artwork image uploads and thumbnail generation
type ImageProcessor struct {
	basePath string
	logger   *logging.ChanneledLogger
}

// NewImageProcessor creates a new ImageProcessor instance
func NewImageProcessor(basePath string, logger *logging.ChanneledLogger) *ImageProcessor {
	return &ImageProcessor{
		basePath: basePath,
		logger:   logger,
	}
}

// ProcessArtworkImage handles a base64 artwork upload. The original is saved
// under images/works/ and WebP thumbnails are generated alongside under
// images/thumbs/. Returns the original's relative URL and the thumbnail URLs.
func (p *ImageProcessor) ProcessArtworkImage(data, artworkID string) (string, []string, error) {
	if data == "" {
		return "", nil, fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", nil, fmt.Errorf("unsupported image format")
	}

	timestamp := time.Now().UnixMilli()
	filename := fmt.Sprintf("%s-%d.%s", artworkID, timestamp, ext)

	worksDir := filepath.Join(p.basePath, "images", "works")
	thumbsDir := filepath.Join(p.basePath, "images", "thumbs")

	if err := os.MkdirAll(worksDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create works directory: %w", err)
	}
	if err := os.MkdirAll(thumbsDir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create thumbs directory: %w", err)
	}

	originalPath, err := processBinaryImage(data, filename, worksDir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to save original image: %w", err)
	}

	basename := fmt.Sprintf("%s-%d", artworkID, timestamp)
	thumbnailPaths, err := p.generateWebPThumbnails(originalPath, basename, thumbsDir)
	if err != nil {
		os.Remove(originalPath)
		return "", nil, fmt.Errorf("failed to generate thumbnails: %w", err)
	}

	p.logger.Media().Info("Artwork image processed",
		"artworkId", artworkID, "filename", filename, "thumbnails", len(thumbnailPaths))

	relativeOriginal := fmt.Sprintf("/media/images/works/%s", filename)
	relativeThumbnails := make([]string, len(thumbnailPaths))
	for i, thumbPath := range thumbnailPaths {
		relativeThumbnails[i] = fmt.Sprintf("/media/images/thumbs/%s", filepath.Base(thumbPath))
	}

	return relativeOriginal, relativeThumbnails, nil
}

// GenerateThumbnails creates WebP thumbnails for an already-stored image.
// Used by the warming pass over the seeded catalog. Existing thumbnails
// are left alone.
func (p *ImageProcessor) GenerateThumbnails(imagePath string) ([]string, error) {
	filename := filepath.Base(imagePath)
	basename := strings.TrimSuffix(filename, filepath.Ext(filename))

	thumbsDir := filepath.Join(p.basePath, "images", "thumbs")
	if err := os.MkdirAll(thumbsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create thumbs directory: %w", err)
	}

	firstWidth := config.ThumbnailWidths[0]
	firstThumb := filepath.Join(thumbsDir, fmt.Sprintf("%s_%dpx.webp", basename, firstWidth))
	if _, err := os.Stat(firstThumb); err == nil {
		return nil, nil
	}

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(imagePath, "/media/"))
	return p.generateWebPThumbnails(originalPath, basename, thumbsDir)
}

// DeleteArtworkImageAndThumbnails removes an artwork's original image and
// its generated thumbnails.
func (p *ImageProcessor) DeleteArtworkImageAndThumbnails(imagePath string) error {
	if imagePath == "" {
		return fmt.Errorf("empty image path")
	}

	filename := filepath.Base(imagePath)
	basename := strings.TrimSuffix(filename, filepath.Ext(filename))

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(imagePath, "/media/"))
	if err := os.Remove(originalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}

	thumbsDir := filepath.Join(p.basePath, "images", "thumbs")
	for _, width := range config.ThumbnailWidths {
		thumbPath := filepath.Join(thumbsDir, fmt.Sprintf("%s_%dpx.webp", basename, width))
		if err := os.Remove(thumbPath); err != nil && !os.IsNotExist(err) {
			p.logger.Media().Warn("Failed to remove thumbnail", "path", thumbPath, "error", err.Error())
		}
	}

	p.logger.Media().Info("Artwork image removed", "path", imagePath)
	return nil
}

// generateWebPThumbnails renders one WebP per configured width, preserving
// aspect ratio.
func (p *ImageProcessor) generateWebPThumbnails(originalPath, basename, thumbsDir string) ([]string, error) {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	widths := config.ThumbnailWidths
	thumbnailPaths := make([]string, len(widths))

	for i, width := range widths {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)

		thumbFilename := fmt.Sprintf("%s_%dpx.webp", basename, width)
		thumbPath := filepath.Join(thumbsDir, thumbFilename)

		err := webp.Save(thumbPath, resized, &webp.Options{Quality: config.WebpQuality})
		if err != nil {
			for j := 0; j < i; j++ {
				os.Remove(thumbnailPaths[j])
			}
			return nil, fmt.Errorf("failed to save WebP thumbnail %s: %w", thumbFilename, err)
		}

		thumbnailPaths[i] = thumbPath
	}

	return thumbnailPaths, nil
}

// extractExtension auto-detects file extension from MIME type
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	}
	return ""
}

// processBinaryImage decodes and writes a base64 binary image (PNG, JPG, WebP)
func processBinaryImage(data, filename, targetDir string) (string, error) {
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid binary image base64 format")
	}

	b64Data := binaryPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write binary file: %w", err)
	}

	return fullPath, nil
}
