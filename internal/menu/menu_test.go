package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByID(t *testing.T) {
	item, ok := ByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Veg Sandwich", item.Name)
	assert.Equal(t, 30, item.Price)

	item, ok = ByID(3)
	assert.True(t, ok)
	assert.Equal(t, "Coffee", item.Name)
	assert.Equal(t, 20, item.Price)

	_, ok = ByID(99)
	assert.False(t, ok)
}

func TestMenuIsWellFormed(t *testing.T) {
	seen := make(map[int]bool)
	for _, item := range Items {
		assert.False(t, seen[item.ID], "duplicate menu item ID %d", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name)
		assert.Greater(t, item.Price, 0, "item %q must have a positive price", item.Name)
	}
}
