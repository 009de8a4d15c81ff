package eventservices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

func TestStrikeBounds(t *testing.T) {
	bounds := DefaultStrikeWindow().Bounds(187.45)

	assert.Equal(t, "149.96", bounds.Min.String())
	assert.Equal(t, "224.94", bounds.Max.String())

	assert.True(t, bounds.Contains(149.96))
	assert.True(t, bounds.Contains(224.94))
	assert.False(t, bounds.Contains(149.95))
	assert.False(t, bounds.Contains(224.95))
}

func TestFilterQuotesByStrike(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		bounds := DefaultStrikeWindow().Bounds(100)
		quotes := []eventmodels.OptionQuote{
			quote(79, nil), quote(80, nil), quote(100, nil), quote(120, nil), quote(121, nil),
		}

		filtered := FilterQuotesByStrike(quotes, bounds)

		assert.Equal(t, []eventmodels.OptionQuote{quote(80, nil), quote(100, nil), quote(120, nil)}, filtered)
	})

	t.Run("custom window", func(t *testing.T) {
		bounds := NewStrikeWindow(0.9, 1.1).Bounds(50)
		quotes := []eventmodels.OptionQuote{quote(44, nil), quote(45, nil), quote(55, nil), quote(56, nil)}

		filtered := FilterQuotesByStrike(quotes, bounds)

		assert.Len(t, filtered, 2)
	})

	t.Run("nothing in range", func(t *testing.T) {
		filtered := FilterQuotesByStrike([]eventmodels.OptionQuote{quote(10, nil)}, DefaultStrikeWindow().Bounds(100))

		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}
