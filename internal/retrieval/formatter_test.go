package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatContextEmpty(t *testing.T) {
	assert.Equal(t, "", FormatContext(nil))
	assert.Equal(t, "", FormatContext([]RetrievedItem{}))
}

func TestFormatContextLine(t *testing.T) {
	items := []RetrievedItem{
		{ID: "B0ABC123", Description: "wireless earbuds", Rating: 4.3},
	}
	assert.Equal(t, "- ID: B0ABC123, rating: 4.3, description: wireless earbuds\n", FormatContext(items))
}

func TestFormatContextZeroValues(t *testing.T) {
	items := []RetrievedItem{
		{ID: "B0X"},
		{ID: "B0Y", Description: "usb hub", Rating: 5},
	}
	got := FormatContext(items)
	assert.Equal(t, "- ID: B0X, rating: 0, description: \n- ID: B0Y, rating: 5, description: usb hub\n", got)
}
