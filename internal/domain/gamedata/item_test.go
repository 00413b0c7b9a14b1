package gamedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/wakfudb/internal/domain/gamedata"
	"github.com/andrescamacho/wakfudb/internal/domain/shared"
	"github.com/andrescamacho/wakfudb/test/helpers"
)

func TestNormalizeItem_FullTree(t *testing.T) {
	// Arrange
	raw := helpers.ItemRecord(t, 2022, 120, 1)
	slots := gamedata.NewSlotAllocator()

	// Act
	item, err := gamedata.NormalizeItem(raw, slots)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2022), item.ID)

	require.NotNil(t, item.Title)
	assert.Equal(t, "Objet 2022", *item.Title.FR)
	require.NotNil(t, item.Description)
	assert.Equal(t, "Description 2022", *item.Description.FR)
	assert.Nil(t, item.Description.EN)

	params := item.Definition.Parameters
	assert.Equal(t, int64(2022), params.ID, "parameters share the item id")
	assert.Equal(t, int64(12), params.Level)
	assert.Equal(t, []int64{1, 2}, params.Properties)
	assert.Equal(t, int64(120), params.Base.ItemTypeID)
	assert.Equal(t, int64(2), params.Base.Rarity)
	assert.Equal(t, int64(4), params.Base.MaximumShardSlotNumber)
	assert.False(t, params.Use.UseTestLos)
	assert.Equal(t, int64(1100), params.Graphic.GfxID)

	assert.Empty(t, item.Definition.UseEffects)
	assert.Empty(t, item.Definition.UseCriticalEffects)
	require.Len(t, item.Definition.EquipEffects, 1)

	slot := item.Definition.EquipEffects[0]
	assert.Equal(t, int64(1), slot.SlotID)
	assert.Equal(t, int64(202200), slot.Effect.Definition.ID)
	assert.Equal(t, int64(1), slot.Effect.Definition.ActionID)
	assert.Equal(t, int64(32767), slot.Effect.Definition.AreaShape)
	assert.Equal(t, []float64{10, 0.5}, slot.Effect.Definition.Params)
	require.NotNil(t, slot.Effect.Description)
	assert.Equal(t, "Effet 2022", *slot.Effect.Description.FR)
}

func TestNormalizeItem_SlotIDsMonotonicAcrossListsAndRecords(t *testing.T) {
	slots := gamedata.NewSlotAllocator()

	raw := helpers.DecodeRecord(t, `{
		"definition": {
			"item": {
				"id": 1,
				"level": 1,
				"baseParameters": {
					"itemTypeId": 1, "itemSetId": 0, "rarity": 0, "bindType": 0,
					"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostAp": 0, "useCostMp": 0, "useCostWp": 0,
					"useRangeMin": 0, "useRangeMax": 0,
					"useTestFreeCell": false, "useTestLos": false,
					"useTestOnlyLine": false, "useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}
			},
			"useEffects": [
				{"effect": {"definition": {"id": 10, "actionId": 1, "areaShape": 0}}},
				{"effect": {"definition": {"id": 11, "actionId": 1, "areaShape": 0}}}
			],
			"equipEffects": [
				{"effect": {"definition": {"id": 12, "actionId": 1, "areaShape": 0}}}
			]
		}
	}`)

	first, err := gamedata.NormalizeItem(raw, slots)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Definition.UseEffects[0].SlotID)
	assert.Equal(t, int64(2), first.Definition.UseEffects[1].SlotID)
	assert.Equal(t, int64(3), first.Definition.EquipEffects[0].SlotID)

	// A second record in the same batch keeps counting, never restarts.
	second, err := gamedata.NormalizeItem(helpers.ItemRecord(t, 2, 1, 1), slots)
	require.NoError(t, err)
	assert.Equal(t, int64(4), second.Definition.EquipEffects[0].SlotID)
}

func TestNormalizeItem_EmptySlotWrapperSkipped(t *testing.T) {
	slots := gamedata.NewSlotAllocator()

	raw := helpers.DecodeRecord(t, `{
		"definition": {
			"item": {
				"id": 5,
				"level": 1,
				"baseParameters": {
					"itemTypeId": 1, "itemSetId": 0, "rarity": 0, "bindType": 0,
					"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostAp": 0, "useCostMp": 0, "useCostWp": 0,
					"useRangeMin": 0, "useRangeMax": 0,
					"useTestFreeCell": false, "useTestLos": false,
					"useTestOnlyLine": false, "useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}
			},
			"equipEffects": [
				{},
				{"effect": null},
				{"effect": {}},
				{"effect": {"definition": {"id": 50, "actionId": 1, "areaShape": 0}}}
			]
		}
	}`)

	item, err := gamedata.NormalizeItem(raw, slots)

	require.NoError(t, err)
	require.Len(t, item.Definition.EquipEffects, 1, "content-free slot wrappers are dropped")
	assert.Equal(t, int64(1), item.Definition.EquipEffects[0].SlotID)
	assert.Equal(t, int64(50), item.Definition.EquipEffects[0].Effect.Definition.ID)
}

func TestNormalizeItem_NoDependentsForMinimalRecord(t *testing.T) {
	item, err := gamedata.NormalizeItem(helpers.PlainItemRecord(t, 9, 1), gamedata.NewSlotAllocator())

	require.NoError(t, err)
	assert.Nil(t, item.Title)
	assert.Nil(t, item.Description)
	assert.NotNil(t, item.Definition.UseEffects)
	assert.Empty(t, item.Definition.UseEffects)
	assert.NotNil(t, item.Definition.Parameters.Properties)
	assert.Empty(t, item.Definition.Parameters.Properties)
}

func TestNormalizeItem_Malformed(t *testing.T) {
	validInner := `
		"level": 1,
		"baseParameters": {
			"itemTypeId": 1, "itemSetId": 0, "rarity": 0, "bindType": 0,
			"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
		},
		"useParameters": {
			"useCostAp": 0, "useCostMp": 0, "useCostWp": 0,
			"useRangeMin": 0, "useRangeMax": 0,
			"useTestFreeCell": false, "useTestLos": false,
			"useTestOnlyLine": false, "useTestNoBorderCell": false,
			"useWorldTarget": 0
		},
		"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}`

	cases := []struct {
		name string
		raw  string
		path string
	}{
		{
			"missing definition",
			`{"title": {"fr": "x"}}`,
			"definition",
		},
		{
			"missing item",
			`{"definition": {"useEffects": []}}`,
			"definition.item",
		},
		{
			"missing id",
			`{"definition": {"item": {` + validInner + `}}}`,
			"definition.item.id",
		},
		{
			"missing level",
			`{"definition": {"item": {
				"id": 1,
				"baseParameters": {
					"itemTypeId": 1, "itemSetId": 0, "rarity": 0, "bindType": 0,
					"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostAp": 0, "useCostMp": 0, "useCostWp": 0,
					"useRangeMin": 0, "useRangeMax": 0,
					"useTestFreeCell": false, "useTestLos": false,
					"useTestOnlyLine": false, "useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}
			}}}`,
			"definition.item.level",
		},
		{
			"missing rarity",
			`{"definition": {"item": {
				"id": 1,
				"level": 1,
				"baseParameters": {
					"itemTypeId": 1, "itemSetId": 0, "bindType": 0,
					"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostAp": 0, "useCostMp": 0, "useCostWp": 0,
					"useRangeMin": 0, "useRangeMax": 0,
					"useTestFreeCell": false, "useTestLos": false,
					"useTestOnlyLine": false, "useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}
			}}}`,
			"definition.item.baseParameters.rarity",
		},
		{
			"missing use cost",
			`{"definition": {"item": {
				"id": 1,
				"level": 1,
				"baseParameters": {
					"itemTypeId": 1, "itemSetId": 0, "rarity": 0, "bindType": 0,
					"minimumShardSlotNumber": 1, "maximumShardSlotNumber": 4
				},
				"useParameters": {
					"useCostMp": 0, "useCostWp": 0,
					"useRangeMin": 0, "useRangeMax": 0,
					"useTestFreeCell": false, "useTestLos": false,
					"useTestOnlyLine": false, "useTestNoBorderCell": false,
					"useWorldTarget": 0
				},
				"graphicParameters": {"gfxId": 0, "femaleGfxId": 0}
			}}}`,
			"definition.item.useParameters.useCostAp",
		},
		{
			"effect missing action id",
			`{"definition": {
				"item": {"id": 1, ` + validInner + `},
				"equipEffects": [
					{"effect": {"definition": {"id": 50, "areaShape": 0}}}
				]
			}}`,
			"definition.equipEffects[0].effect.definition.actionId",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := gamedata.NormalizeItem(helpers.DecodeRecord(t, tc.raw), gamedata.NewSlotAllocator())

			assert.Nil(t, item)
			var malformed *shared.MalformedRecordError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tc.path, malformed.Field)
		})
	}
}
