package customer

import "strings"

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListParams are the caller-supplied listing controls. Zero values fall
// back to defaults; out-of-range page/limit values are clamped, not rejected.
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	City    string
	State   string
	PinCode string
	SortBy  string
	Order   string
}

// ListResult is one page of customers plus pagination metadata.
// Total counts all matching rows before pagination.
type ListResult struct {
	Customers  []ListItem
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
}

// sortColumns is the allow-list of sortable fields. Caller-supplied sort
// names are looked up here and never interpolated into SQL directly.
// Both the JSON field spelling and the column spelling are accepted.
var sortColumns = map[string]string{
	"id":            "c.id",
	"firstName":     "c.first_name",
	"first_name":    "c.first_name",
	"lastName":      "c.last_name",
	"last_name":     "c.last_name",
	"phoneNumber":   "c.phone_number",
	"phone_number":  "c.phone_number",
	"addressCount":  "address_count",
	"address_count": "address_count",
}

func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// sortColumn resolves SortBy against the allow-list; unknown values fall
// back to the primary key.
func (p ListParams) sortColumn() string {
	if col, ok := sortColumns[p.SortBy]; ok {
		return col
	}
	return "c.id"
}

// sortOrder resolves Order case-insensitively; anything but desc is asc.
func (p ListParams) sortOrder() string {
	if strings.EqualFold(p.Order, "desc") {
		return "DESC"
	}
	return "ASC"
}

// whereClause builds the shared WHERE fragment for the count and data
// queries. Search matches any of the three name/phone columns; each
// address filter independently requires at least one matching address.
func (p ListParams) whereClause() (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if p.Search != "" {
		clauses = append(clauses, "(c.first_name LIKE ? OR c.last_name LIKE ? OR c.phone_number LIKE ?)")
		like := "%" + p.Search + "%"
		args = append(args, like, like, like)
	}
	if p.City != "" {
		clauses = append(clauses, "c.id IN (SELECT customer_id FROM addresses WHERE city = ?)")
		args = append(args, p.City)
	}
	if p.State != "" {
		clauses = append(clauses, "c.id IN (SELECT customer_id FROM addresses WHERE state = ?)")
		args = append(args, p.State)
	}
	if p.PinCode != "" {
		clauses = append(clauses, "c.id IN (SELECT customer_id FROM addresses WHERE pin_code = ?)")
		args = append(args, p.PinCode)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
