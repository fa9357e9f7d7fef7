package mc

import "testing"

func TestQueryEncode(t *testing.T) {
	cases := map[string]struct {
		query Query
		want  string
	}{
		"filtered by id": {
			Query{Module: ModuleAssets, Filter: FilterID, Operator: OpEq, Identifier: "SHI-V-1405", Top: 50},
			`?$filter=ID%20eq%20"SHI-V-1405"&$top=50&$skip=0`,
		},
		"filtered with paging": {
			Query{Module: ModuleAssets, Filter: FilterRepairCenterID, Operator: OpEq, Identifier: "Main", Top: 5, Skip: 10},
			`?$filter=RepairCenterRef.ID%20eq%20"Main"&$top=5&$skip=10`,
		},
		"nested classification filter": {
			Query{Module: ModuleAssets, Filter: FilterClassificationID, Operator: OpEq, Identifier: "V", Top: 500},
			`?$filter=ClassificationRef.ID%20eq%20"V"&$top=500&$skip=0`,
		},
		"date comparison": {
			Query{Module: ModuleAssets, Filter: FilterLastModified, Operator: OpGt, Identifier: "2012-10-15", Top: 50},
			`?$filter=LastModifiedDate%20gt%20"2012-10-15"&$top=50&$skip=0`,
		},
		"no filter": {
			Query{Module: ModuleClassifications, Top: 100, Skip: 200},
			"?$top=100&$skip=200",
		},
		"no filter default top": {
			Query{Module: ModuleAssets},
			"?$top=50&$skip=0",
		},
	}
	for name, tc := range cases {
		if got := tc.query.Encode(); got != tc.want {
			t.Fatalf("%s: Encode()=%q want %q", name, got, tc.want)
		}
	}
}
