package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/domain/catalog"
)

func TestIngestionOrder_ItemsLast(t *testing.T) {
	order := catalog.IngestionOrder()

	require.NotEmpty(t, order)
	assert.Equal(t, catalog.Items, order[len(order)-1],
		"items reference every other family and must come last")
	for _, category := range order[:len(order)-1] {
		assert.NotEqual(t, catalog.Items, category)
	}
}

func TestIngestionOrder_SubsetOfCatalog(t *testing.T) {
	for _, category := range catalog.IngestionOrder() {
		assert.True(t, category.Valid(), "category %s missing from catalog", category)
	}
}

func TestAll_CoversEveryDescribedCategory(t *testing.T) {
	all := catalog.All()
	assert.Len(t, all, 16)

	seen := make(map[catalog.Category]bool)
	for _, category := range all {
		assert.False(t, seen[category], "category %s listed twice", category)
		seen[category] = true
		assert.NotEmpty(t, category.Description())
	}
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, catalog.Items.Valid())
	assert.True(t, catalog.EquipmentItemTypes.Valid())
	assert.False(t, catalog.Category("unknown").Valid())
}
