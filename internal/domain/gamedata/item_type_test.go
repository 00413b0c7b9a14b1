package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
	"github.com/andrescamacho/wakfudb/test/helpers"
)

func TestNormalizeItemType_FullRecord(t *testing.T) {
	// Arrange
	raw := helpers.DecodeRecord(t, `{
		"definition": {
			"id": 120,
			"parentId": 100,
			"equipmentPositions": ["LEFT_HAND", "RIGHT_HAND"],
			"equipmentDisabledPositions": ["RIGHT_HAND"],
			"isRecyclable": true,
			"isVisibleInAnimation": true
		},
		"title": {"fr": "Hache", "en": "Axe", "es": "Hacha", "pt": "Machado"}
	}`)

	// Act
	itemType, err := gamedata.NormalizeItemType(raw)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(120), itemType.ID)
	require.NotNil(t, itemType.ParentID)
	assert.Equal(t, int64(100), *itemType.ParentID)
	assert.Equal(t, []string{"LEFT_HAND", "RIGHT_HAND"}, itemType.EquipmentPositions)
	assert.Equal(t, []string{"RIGHT_HAND"}, itemType.EquipmentDisabledPositions)
	assert.True(t, itemType.IsRecyclable)
	assert.True(t, itemType.IsVisibleInAnimation)
	require.NotNil(t, itemType.Title)
	assert.Equal(t, "Axe", *itemType.Title.EN)
}

func TestNormalizeItemType_Defaults(t *testing.T) {
	// A minimal record: every field beyond the id falls back to its
	// documented default instead of failing.
	raw := helpers.DecodeRecord(t, `{"definition": {"id": 103}}`)

	itemType, err := gamedata.NormalizeItemType(raw)

	require.NoError(t, err)
	assert.Equal(t, int64(103), itemType.ID)
	assert.Nil(t, itemType.ParentID)
	assert.Equal(t, []string{}, itemType.EquipmentPositions)
	assert.Equal(t, []string{}, itemType.EquipmentDisabledPositions)
	assert.False(t, itemType.IsRecyclable)
	assert.False(t, itemType.IsVisibleInAnimation)
	assert.Nil(t, itemType.Title)
}

func TestNormalizeItemType_NullParentID(t *testing.T) {
	raw := helpers.DecodeRecord(t, `{"definition": {"id": 104, "parentId": null}}`)

	itemType, err := gamedata.NormalizeItemType(raw)

	require.NoError(t, err)
	assert.Nil(t, itemType.ParentID)
}

func TestNormalizeItemType_NullLists(t *testing.T) {
	raw := helpers.DecodeRecord(t, `{
		"definition": {
			"id": 105,
			"equipmentPositions": null,
			"equipmentDisabledPositions": null
		}
	}`)

	itemType, err := gamedata.NormalizeItemType(raw)

	require.NoError(t, err)
	assert.NotNil(t, itemType.EquipmentPositions)
	assert.Empty(t, itemType.EquipmentPositions)
	assert.NotNil(t, itemType.EquipmentDisabledPositions)
	assert.Empty(t, itemType.EquipmentDisabledPositions)
}

func TestNormalizeItemType_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		path string
	}{
		{"missing definition", `{"title": {"fr": "Hache"}}`, "definition"},
		{"empty definition", `{"definition": {}}`, "definition"},
		{"missing id", `{"definition": {"parentId": 100}}`, "definition.id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			itemType, err := gamedata.NormalizeItemType(helpers.DecodeRecord(t, tc.raw))

			assert.Nil(t, itemType)
			var malformed *shared.MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.path, malformed.Field)
		})
	}
}
