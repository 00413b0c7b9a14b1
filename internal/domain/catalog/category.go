// Package catalog enumerates the fixed set of game-data categories
// published by the Wakfu CDN. The list is closed and versioned with the
// persisted schema: adding a category means adding a normalizer and an
// entry in the ingestion order.
package catalog

// Category identifies one upstream JSON document family.
type Category string

const (
	Actions              Category = "actions"
	Blueprints           Category = "blueprints"
	CollectibleResources Category = "collectibleResources"
	EquipmentItemTypes   Category = "equipmentItemTypes"
	HarvestLoots         Category = "harvestLoots"
	ItemTypes            Category = "itemTypes"
	ItemProperties       Category = "itemProperties"
	Items                Category = "items"
	JobsItems            Category = "jobsItems"
	RecipeCategories     Category = "recipeCategories"
	RecipeIngredients    Category = "recipeIngredients"
	RecipeResults        Category = "recipeResults"
	Recipes              Category = "recipes"
	ResourceTypes        Category = "resourceTypes"
	Resources            Category = "resources"
	States               Category = "states"
)

// descriptions documents what each upstream file contains. Documentation
// only, no behavioral effect.
var descriptions = map[Category]string{
	Actions:              "Effect type definitions (HP loss, AP boost, ...).",
	Blueprints:           "Blueprints unlocking craft recipes.",
	CollectibleResources: "Harvest actions.",
	EquipmentItemTypes:   "Equipment type definitions and their equip positions.",
	HarvestLoots:         "Objects obtained through harvesting.",
	ItemTypes:            "Item type definitions.",
	ItemProperties:       "Properties that can be applied to items.",
	Items:                "Item data: effects, names, descriptions. Cross-references actions, equipmentItemTypes and itemProperties.",
	JobsItems:            "Items harvested, crafted and consumed by craft recipes (light version of items).",
	RecipeCategories:     "The list of professions.",
	RecipeIngredients:    "Craft ingredients.",
	RecipeResults:        "Objects produced by crafts.",
	Recipes:              "The list of craft recipes.",
	ResourceTypes:        "Resource types.",
	Resources:            "Resources.",
	States:               "Translations of the states used by equipment.",
}

// All returns the full fixed category set in upstream publication order.
func All() []Category {
	return []Category{
		Actions,
		Blueprints,
		CollectibleResources,
		EquipmentItemTypes,
		HarvestLoots,
		ItemTypes,
		ItemProperties,
		Items,
		JobsItems,
		RecipeCategories,
		RecipeIngredients,
		RecipeResults,
		Recipes,
		ResourceTypes,
		Resources,
		States,
	}
}

// IngestionOrder returns the ingestible categories in foreign-key
// dependency order: reference data first, items strictly last since item
// records carry foreign keys into all the others.
func IngestionOrder() []Category {
	return []Category{
		Actions,
		ItemTypes,
		EquipmentItemTypes,
		ItemProperties,
		States,
		Items,
	}
}

// Description returns the human-readable documentation for a category.
func (c Category) Description() string {
	return descriptions[c]
}

// Valid reports whether c is part of the fixed catalog.
func (c Category) Valid() bool {
	_, ok := descriptions[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}
