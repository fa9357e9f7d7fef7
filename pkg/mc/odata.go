package mc

// Modules recognized by the v8 endpoint. Other collections exist on the
// remote service but get no special handling here.
const (
	ModuleAssets          = "assets"
	ModuleClassifications = "classifications"
)

// Comparison and logical operators accepted in $filter expressions.
const (
	OpEq  = "eq"
	OpNe  = "ne"
	OpGt  = "gt"
	OpGe  = "ge"
	OpLt  = "lt"
	OpLe  = "le"
	OpAnd = "and"
	OpOr  = "or"
	OpNot = "not"
)

// Filterable field names exposed by the assets and classifications modules.
const (
	FilterID               = "ID"
	FilterPK               = "PK"
	FilterParentID         = "ParentRef.ID"
	FilterClassificationID = "ClassificationRef.ID"
	FilterRepairCenterID   = "RepairCenterRef.ID"
	FilterShopID           = "ShopRef.ID"
	FilterVicinity         = "Vicinity"
	FilterIcon             = "Icon"
	FilterIsLocation       = "IsLocation"
	FilterTypeValue        = "TypeDetails.Value"
	FilterLastModified     = "LastModifiedDate"
	FilterIsOpen           = "IsOpen"
)

// Result paging bounds enforced server-side.
const (
	DefaultTop = 50
	MaxTop     = 500
)
