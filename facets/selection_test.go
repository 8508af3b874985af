package facets

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionToggle(t *testing.T) {
	sel := NewSelection()
	assert.True(t, sel.IsEmpty())

	sel.Toggle(KeyPrice, "0-100")
	assert.True(t, sel.Has(KeyPrice, "0-100"))
	assert.True(t, sel.Active(KeyPrice))

	// Toggling again deselects and drops the now-empty key.
	sel.Toggle(KeyPrice, "0-100")
	assert.False(t, sel.Has(KeyPrice, "0-100"))
	assert.False(t, sel.Active(KeyPrice))
	assert.True(t, sel.IsEmpty())
}

func TestSelectionMultiSelect(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyPrice, "0-100")
	sel.Toggle(KeyPrice, "101-500")

	assert.ElementsMatch(t, []string{"0-100", "101-500"}, sel.Values(KeyPrice))
}

func TestSelectionClear(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyPrice, "0-100")
	sel.Toggle(KeyRating, "4")

	sel.Clear()
	assert.True(t, sel.IsEmpty())
}

func TestParseSelection(t *testing.T) {
	t.Run("comma-joined values split into a set", func(t *testing.T) {
		query := url.Values{KeyPrice: []string{"0-100,101-500"}}
		sel := ParseSelection(query)

		assert.True(t, sel.Has(KeyPrice, "0-100"))
		assert.True(t, sel.Has(KeyPrice, "101-500"))
	})

	t.Run("repeated keys accumulate", func(t *testing.T) {
		query := url.Values{KeyRating: []string{"4", "3"}}
		sel := ParseSelection(query)

		assert.True(t, sel.Has(KeyRating, "4"))
		assert.True(t, sel.Has(KeyRating, "3"))
	})

	t.Run("unknown keys dropped silently", func(t *testing.T) {
		query := url.Values{
			"page":   []string{"2"},
			"sortBy": []string{"price"},
			"bogus":  []string{"x"},
		}
		sel := ParseSelection(query)
		assert.True(t, sel.IsEmpty())
	})

	t.Run("blank and whitespace values filtered out", func(t *testing.T) {
		query := url.Values{KeyPrice: []string{", , 0-100,,"}}
		sel := ParseSelection(query)

		require.True(t, sel.Active(KeyPrice))
		assert.Equal(t, []string{"0-100"}, sel.Values(KeyPrice))
	})
}

func TestEncodeQuery(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyPrice, "101-500")
	sel.Toggle(KeyPrice, "0-100")
	sel.Toggle(KeyRating, "4")

	encoded := sel.EncodeQuery()
	assert.Equal(t, "0-100,101-500", encoded.Get(KeyPrice))
	assert.Equal(t, "4", encoded.Get(KeyRating))

	// Keys toggled back to empty are omitted entirely.
	sel.Toggle(KeyRating, "4")
	encoded = sel.EncodeQuery()
	_, present := encoded[KeyRating]
	assert.False(t, present)
}

func TestSelectionQueryRoundTrip(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(KeyCategory, "018f0000-0000-7000-8000-00000000000a")
	sel.Toggle(KeyPrice, "1000+")
	sel.Toggle(KeyPrice, "0-100")

	parsed := ParseSelection(sel.EncodeQuery())
	assert.Equal(t, sel, parsed)
}
