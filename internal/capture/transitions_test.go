package capture

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerImage builds an image whose top headerRows rows are dark chrome and
// whose remaining rows are light content.
func headerImage(width, height, headerRows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	chrome := color.RGBA{R: 30, G: 30, B: 40, A: 255}
	content := color.RGBA{R: 220, G: 210, B: 190, A: 255}

	for y := 0; y < height; y++ {
		c := content
		if y < headerRows {
			c = chrome
		}
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRGBDelta(t *testing.T) {
	assert.Equal(t, 0, RGB{10, 20, 30}.Delta(RGB{10, 20, 30}))
	assert.Equal(t, 60, RGB{10, 20, 30}.Delta(RGB{30, 40, 10}))
	// Symmetric.
	assert.Equal(t, RGB{0, 0, 0}.Delta(RGB{255, 255, 255}), RGB{255, 255, 255}.Delta(RGB{0, 0, 0}))
}

func TestScanColumn_RespectsLimit(t *testing.T) {
	img := headerImage(10, 200, 32)

	column := ScanColumn(img, 5, 150)
	assert.Len(t, column, 150)

	// Limit larger than the image falls back to the image height.
	column = ScanColumn(img, 5, 1000)
	assert.Len(t, column, 200)

	assert.Equal(t, RGB{30, 30, 40}, column[0])
	assert.Equal(t, RGB{220, 210, 190}, column[199])
}

func TestDetectTransitions_FindsHeaderEdge(t *testing.T) {
	img := headerImage(10, 150, 32)
	column := ScanColumn(img, 5, 150)

	transitions := DetectTransitions(column, 50)
	require.Len(t, transitions, 1)
	assert.Equal(t, 32, transitions[0].Y)
	assert.Equal(t, RGB{30, 30, 40}, transitions[0].Before)
	assert.Equal(t, RGB{220, 210, 190}, transitions[0].After)

	y, ok := HeaderEstimate(transitions)
	require.True(t, ok)
	assert.Equal(t, 32, y)
}

func TestDetectTransitions_BelowThreshold(t *testing.T) {
	// Uniform image: no transitions at all.
	img := headerImage(10, 100, 0)
	column := ScanColumn(img, 0, 100)

	assert.Empty(t, DetectTransitions(column, 50))

	_, ok := HeaderEstimate(nil)
	assert.False(t, ok)
}

func TestDetectTransitions_ThresholdIsExclusive(t *testing.T) {
	column := []RGB{{0, 0, 0}, {10, 20, 20}}

	// Delta is exactly 50: not a transition.
	assert.Empty(t, DetectTransitions(column, 50))
	// One below, and it is.
	assert.Len(t, DetectTransitions(column, 49), 1)
}
