package inventory

// Ref points at another record by tag ID only.
type Ref struct {
	ID string `json:"ID"`
}

// TypeDetails carries the record discriminator: "A" for asset, "L" for location.
type TypeDetails struct {
	Value string `json:"Value"`
}

// Record is the flattened shape of a Maintenance Connection asset,
// location or classification. Pointer fields marshal as an explicit
// null when the remote record did not carry the value.
type Record struct {
	PK                *int         `json:"PK"`
	ID                *string      `json:"ID"`
	Name              *string      `json:"Name"`
	IsLocation        *bool        `json:"IsLocation"`
	Vicinity          *string      `json:"Vicinity"`
	Icon              *string      `json:"Icon"`
	UDFChar9          *string      `json:"UDFChar9"`
	ParentRef         *Ref         `json:"ParentRef"`
	ClassificationRef *Ref         `json:"ClassificationRef"`
	RepairCenterRef   *Ref         `json:"RepairCenterRef"`
	ShopRef           *Ref         `json:"ShopRef"`
	TypeDetails       *TypeDetails `json:"TypeDetails"`
}

// String returns a pointer to s, for building mutation payloads.
func String(s string) *string { return &s }

// Int returns a pointer to n, for building mutation payloads.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for building mutation payloads.
func Bool(b bool) *bool { return &b }
