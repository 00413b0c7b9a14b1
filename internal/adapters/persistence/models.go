package persistence

// Row models for the normalized game-data schema. Primary keys are the
// source documents' native ids; every 1:1 dependent table's primary key
// doubles as its foreign key to the owner. Those shared-key relations
// are declared on the owner side: GORM resolves an owner-side struct
// field as has-one, which puts the constraint on the dependent table.
// The effect-slot join tables are the exception: their primary key is a
// batch-scoped surrogate and they carry explicit foreign keys to the
// owning definition and to the effect row.

// ActionModel represents the actions table
type ActionModel struct {
	ID          int64                   `gorm:"column:id;primaryKey"`
	Effect      string                  `gorm:"column:effect;not null"`
	Description *ActionDescriptionModel `gorm:"foreignKey:ID;references:ID"`
}

func (ActionModel) TableName() string {
	return "actions"
}

// ActionDescriptionModel represents the action_descriptions table
type ActionDescriptionModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (ActionDescriptionModel) TableName() string {
	return "action_descriptions"
}

// ItemTypeModel represents the item_types table
// NOTE: parent_id is self-referential and a parent may be materialized
// later in the same category batch, so it carries no database-level
// constraint.
type ItemTypeModel struct {
	ID                         int64  `gorm:"column:id;primaryKey"`
	ParentID                   *int64 `gorm:"column:parent_id"`
	EquipmentPositions         string `gorm:"column:equipment_positions;type:text;not null"`          // JSON array as text
	EquipmentDisabledPositions string `gorm:"column:equipment_disabled_positions;type:text;not null"` // JSON array as text
	IsRecyclable               bool   `gorm:"column:is_recyclable;not null"`
	IsVisibleInAnimation       bool   `gorm:"column:is_visible_in_animation;not null"`

	Title *ItemTypeTitleModel `gorm:"foreignKey:ID;references:ID"`
}

func (ItemTypeModel) TableName() string {
	return "item_types"
}

// ItemTypeTitleModel represents the item_type_titles table
type ItemTypeTitleModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (ItemTypeTitleModel) TableName() string {
	return "item_type_titles"
}

// ItemPropertyModel represents the item_properties table
type ItemPropertyModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description;not null"`
}

func (ItemPropertyModel) TableName() string {
	return "item_properties"
}

// StateModel represents the states table
type StateModel struct {
	ID          int64                  `gorm:"column:id;primaryKey"`
	Title       *StateTitleModel       `gorm:"foreignKey:ID;references:ID"`
	Description *StateDescriptionModel `gorm:"foreignKey:ID;references:ID"`
}

func (StateModel) TableName() string {
	return "states"
}

// StateTitleModel represents the state_titles table
type StateTitleModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (StateTitleModel) TableName() string {
	return "state_titles"
}

// StateDescriptionModel represents the state_descriptions table
type StateDescriptionModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (StateDescriptionModel) TableName() string {
	return "state_descriptions"
}

// ItemModel represents the items table
type ItemModel struct {
	ID          int64                 `gorm:"column:id;primaryKey"`
	Title       *ItemTitleModel       `gorm:"foreignKey:ID;references:ID"`
	Description *ItemDescriptionModel `gorm:"foreignKey:ID;references:ID"`
	Definition  *ItemDefinitionModel  `gorm:"foreignKey:ID;references:ID"`
}

func (ItemModel) TableName() string {
	return "items"
}

// ItemTitleModel represents the item_titles table
type ItemTitleModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (ItemTitleModel) TableName() string {
	return "item_titles"
}

// ItemDescriptionModel represents the item_descriptions table
type ItemDescriptionModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (ItemDescriptionModel) TableName() string {
	return "item_descriptions"
}

// ItemDefinitionModel represents the item_definitions table
type ItemDefinitionModel struct {
	ID         int64                `gorm:"column:id;primaryKey"`
	Parameters *ItemParametersModel `gorm:"foreignKey:ID;references:ID"`
}

func (ItemDefinitionModel) TableName() string {
	return "item_definitions"
}

// ItemParametersModel represents the item_parameters table
type ItemParametersModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Level      int64  `gorm:"column:level;not null"`
	Properties string `gorm:"column:properties;type:text;not null"` // JSON array as text, unvalidated ids

	Base    *BaseParametersModel    `gorm:"foreignKey:ID;references:ID"`
	Use     *UseParametersModel     `gorm:"foreignKey:ID;references:ID"`
	Graphic *GraphicParametersModel `gorm:"foreignKey:ID;references:ID"`
}

func (ItemParametersModel) TableName() string {
	return "item_parameters"
}

// BaseParametersModel represents the base_parameters table
type BaseParametersModel struct {
	ID                     int64          `gorm:"column:id;primaryKey"`
	ItemTypeID             int64          `gorm:"column:item_type_id;not null"`
	ItemType               *ItemTypeModel `gorm:"foreignKey:ItemTypeID;references:ID"`
	ItemSetID              int64          `gorm:"column:item_set_id;not null"`
	Rarity                 int64          `gorm:"column:rarity;not null"`
	BindType               int64          `gorm:"column:bind_type;not null"`
	MinimumShardSlotNumber int64          `gorm:"column:minimum_shard_slot_number;not null"`
	MaximumShardSlotNumber int64          `gorm:"column:maximum_shard_slot_number;not null"`
}

func (BaseParametersModel) TableName() string {
	return "base_parameters"
}

// UseParametersModel represents the use_parameters table
type UseParametersModel struct {
	ID                  int64 `gorm:"column:id;primaryKey"`
	UseCostAP           int64 `gorm:"column:use_cost_ap;not null"`
	UseCostMP           int64 `gorm:"column:use_cost_mp;not null"`
	UseCostWP           int64 `gorm:"column:use_cost_wp;not null"`
	UseRangeMin         int64 `gorm:"column:use_range_min;not null"`
	UseRangeMax         int64 `gorm:"column:use_range_max;not null"`
	UseTestFreeCell     bool  `gorm:"column:use_test_free_cell;not null"`
	UseTestLos          bool  `gorm:"column:use_test_los;not null"`
	UseTestOnlyLine     bool  `gorm:"column:use_test_only_line;not null"`
	UseTestNoBorderCell bool  `gorm:"column:use_test_no_border_cell;not null"`
	UseWorldTarget      int64 `gorm:"column:use_world_target;not null"`
}

func (UseParametersModel) TableName() string {
	return "use_parameters"
}

// GraphicParametersModel represents the graphic_parameters table
type GraphicParametersModel struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	GfxID       int64 `gorm:"column:gfx_id;not null"`
	FemaleGfxID int64 `gorm:"column:female_gfx_id;not null"`
}

func (GraphicParametersModel) TableName() string {
	return "graphic_parameters"
}

// ItemEffectModel represents the item_effects table. The id is the
// source-provided effect definition id; action_id crosses into the
// actions family and is enforced at the database level.
type ItemEffectModel struct {
	ID          int64                   `gorm:"column:id;primaryKey"`
	ActionID    int64                   `gorm:"column:action_id;not null"`
	Action      *ActionModel            `gorm:"foreignKey:ActionID;references:ID"`
	AreaShape   int64                   `gorm:"column:area_shape;not null"`
	AreaSize    string                  `gorm:"column:area_size;type:text;not null"` // JSON array as text
	Params      string                  `gorm:"column:params;type:text;not null"`    // JSON array as text
	Description *EffectDescriptionModel `gorm:"foreignKey:ID;references:ID"`
}

func (ItemEffectModel) TableName() string {
	return "item_effects"
}

// EffectDescriptionModel represents the effect_descriptions table
type EffectDescriptionModel struct {
	ID int64   `gorm:"column:id;primaryKey"`
	FR *string `gorm:"column:fr"`
	EN *string `gorm:"column:en"`
	ES *string `gorm:"column:es"`
	PT *string `gorm:"column:pt"`
}

func (EffectDescriptionModel) TableName() string {
	return "effect_descriptions"
}

// UseEffectModel represents the use_effects slot table
type UseEffectModel struct {
	ID           int64                `gorm:"column:id;primaryKey"`
	DefinitionID int64                `gorm:"column:definition_id;not null"`
	Definition   *ItemDefinitionModel `gorm:"foreignKey:DefinitionID;references:ID"`
	EffectID     int64                `gorm:"column:effect_id;not null"`
	Effect       *ItemEffectModel     `gorm:"foreignKey:EffectID;references:ID"`
}

func (UseEffectModel) TableName() string {
	return "use_effects"
}

// UseCriticalEffectModel represents the use_critical_effects slot table
type UseCriticalEffectModel struct {
	ID           int64                `gorm:"column:id;primaryKey"`
	DefinitionID int64                `gorm:"column:definition_id;not null"`
	Definition   *ItemDefinitionModel `gorm:"foreignKey:DefinitionID;references:ID"`
	EffectID     int64                `gorm:"column:effect_id;not null"`
	Effect       *ItemEffectModel     `gorm:"foreignKey:EffectID;references:ID"`
}

func (UseCriticalEffectModel) TableName() string {
	return "use_critical_effects"
}

// EquipEffectModel represents the equip_effects slot table
type EquipEffectModel struct {
	ID           int64                `gorm:"column:id;primaryKey"`
	DefinitionID int64                `gorm:"column:definition_id;not null"`
	Definition   *ItemDefinitionModel `gorm:"foreignKey:DefinitionID;references:ID"`
	EffectID     int64                `gorm:"column:effect_id;not null"`
	Effect       *ItemEffectModel     `gorm:"foreignKey:EffectID;references:ID"`
}

func (EquipEffectModel) TableName() string {
	return "equip_effects"
}
