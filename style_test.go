package docview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docview-dev/docview"
)

func TestHeadingFontSize(t *testing.T) {
	t.Parallel()

	t.Run("levels 1 through 6 resolve to the fixed table", func(t *testing.T) {
		t.Parallel()
		expected := map[int]float64{
			1: 28,
			2: 21,
			3: 16.3833,
			4: 14,
			5: 11.6167,
			6: 9.38333,
		}
		for level, size := range expected {
			got, err := docview.HeadingFontSize(level)
			require.NoError(t, err)
			assert.Equal(t, size, got, "level %d", level)
		}
	})

	t.Run("levels outside the table are missing-style errors", func(t *testing.T) {
		t.Parallel()
		for _, level := range []int{0, 7, -1, 100} {
			_, err := docview.HeadingFontSize(level)
			assert.ErrorIs(t, err, docview.ErrMissingStyle, "level %d", level)
		}
	})
}

func TestQuoteInnerBox(t *testing.T) {
	t.Parallel()

	box := docview.QuoteInnerBox()
	assert.Equal(t, docview.Insets{Left: 5, Top: 0, Right: 5, Bottom: 0}, box.Padding)
	assert.Equal(t, docview.Insets{}, box.Margin)
}

func TestStandardBox(t *testing.T) {
	t.Parallel()

	// Top-level spacing must differ from the quote's inner spacing, or
	// the quote override would be unobservable.
	assert.NotEqual(t, docview.StandardBox(), docview.QuoteInnerBox())
}
