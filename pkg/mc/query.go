package mc

import "fmt"

// Query describes one GET against a remote module.
type Query struct {
	Module     string
	Filter     string // field name, empty for an unfiltered listing
	Operator   string
	Identifier string
	Top        int // page size, server default 50, max 500
	Skip       int // page offset
}

// Encode renders the OData-style query string. The endpoint expects the
// filter clause joined by literal %20 with the identifier in double
// quotes and an unescaped $ on each keyword, so the string is assembled
// by hand rather than through url.Values.
func (q Query) Encode() string {
	top := q.Top
	if top <= 0 {
		top = DefaultTop
	}
	if q.Filter != "" {
		return fmt.Sprintf(`?$filter=%s%%20%s%%20"%s"&$top=%d&$skip=%d`,
			q.Filter, q.Operator, q.Identifier, top, q.Skip)
	}
	return fmt.Sprintf("?$top=%d&$skip=%d", top, q.Skip)
}
