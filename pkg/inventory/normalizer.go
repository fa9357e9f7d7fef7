package inventory

import "encoding/json"

// Normalize maps one raw API result onto the fixed Record schema.
// Reference fields flatten to {ID: ...}; a field that is absent, null
// or not an object becomes nil. Normalize never fails on malformed input.
func Normalize(raw map[string]any) Record {
	return Record{
		PK:                intField(raw, "PK"),
		ID:                stringField(raw, "ID"),
		Name:              stringField(raw, "Name"),
		IsLocation:        boolField(raw, "IsLocation"),
		Vicinity:          stringField(raw, "Vicinity"),
		Icon:              stringField(raw, "Icon"),
		UDFChar9:          stringField(raw, "UDFChar9"),
		ParentRef:         refField(raw, "ParentRef"),
		ClassificationRef: refField(raw, "ClassificationRef"),
		RepairCenterRef:   refField(raw, "RepairCenterRef"),
		ShopRef:           refField(raw, "ShopRef"),
		TypeDetails:       typeField(raw, "TypeDetails"),
	}
}

// NormalizeAll maps every entry of a raw Results collection.
func NormalizeAll(results []map[string]any) []Record {
	records := make([]Record, 0, len(results))
	for _, raw := range results {
		records = append(records, Normalize(raw))
	}
	return records
}

func stringField(raw map[string]any, key string) *string {
	if v, ok := raw[key].(string); ok {
		return &v
	}
	return nil
}

func boolField(raw map[string]any, key string) *bool {
	if v, ok := raw[key].(bool); ok {
		return &v
	}
	return nil
}

func intField(raw map[string]any, key string) *int {
	switch v := raw[key].(type) {
	case float64:
		n := int(v)
		return &n
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			n := int(parsed)
			return &n
		}
	case int:
		n := v
		return &n
	}
	return nil
}

func refField(raw map[string]any, key string) *Ref {
	obj, ok := raw[key].(map[string]any)
	if !ok {
		return nil
	}
	id, _ := obj["ID"].(string)
	return &Ref{ID: id}
}

func typeField(raw map[string]any, key string) *TypeDetails {
	obj, ok := raw[key].(map[string]any)
	if !ok {
		return nil
	}
	value, _ := obj["Value"].(string)
	return &TypeDetails{Value: value}
}
