package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-go/internal/domain/entities/catalog"
)

func testSlides() []*catalog.SlideRecord {
	return []*catalog.SlideRecord{
		{ID: 1, Image: "/media/images/works/still-life.jpg", Alt: "Still life"},
		{ID: 2, Image: "/media/images/works/dream.jpg", Alt: "Dream"},
	}
}

func TestGetConfigReturnsSlidesInOrder(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSliderService(env.slideRepo, 5000)

	require.NoError(t, svc.ReplaceSlides(testSlides()))

	cfg, err := svc.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.AutoPlayMs)
	require.Len(t, cfg.Slides, 2)
	assert.Equal(t, 1, cfg.Slides[0].ID)
	assert.Equal(t, 2, cfg.Slides[1].ID)
}

func TestReplaceSlidesSwapsWholeSet(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSliderService(env.slideRepo, 5000)
	require.NoError(t, svc.ReplaceSlides(testSlides()))

	require.NoError(t, svc.ReplaceSlides([]*catalog.SlideRecord{
		{ID: 7, Image: "/media/images/works/spring.jpg", Alt: "Spring"},
	}))

	cfg, err := svc.GetConfig()
	require.NoError(t, err)
	require.Len(t, cfg.Slides, 1)
	assert.Equal(t, 7, cfg.Slides[0].ID)
}

func TestSlideNavigationWrapsBothWays(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSliderService(env.slideRepo, 5000)

	assert.Equal(t, 1, svc.NextIndex(0, 5))
	assert.Equal(t, 0, svc.NextIndex(4, 5))
	assert.Equal(t, 4, svc.PrevIndex(0, 5))
	assert.Equal(t, 3, svc.PrevIndex(4, 5))
}

func TestGotoIndexNormalizes(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSliderService(env.slideRepo, 5000)

	assert.Equal(t, 2, svc.GotoIndex(2, 5))
	assert.Equal(t, 2, svc.GotoIndex(7, 5))
	assert.Equal(t, 3, svc.GotoIndex(-2, 5))
	assert.Equal(t, 0, svc.GotoIndex(3, 0))
}

func TestReplaceSlidesValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSliderService(env.slideRepo, 5000)

	assert.Error(t, svc.ReplaceSlides(nil))
	assert.Error(t, svc.ReplaceSlides([]*catalog.SlideRecord{{ID: 1, Alt: "no image"}}))
}
