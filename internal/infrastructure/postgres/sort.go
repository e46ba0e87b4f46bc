package postgres

import "strings"

// orderExpr translates a "column[,desc]" sort parameter into an ORDER BY
// expression. Columns outside the allowed set fall back to the primary
// key, so caller-supplied sort strings never reach SQL unchecked.
func orderExpr(sort string, allowed map[string]bool) string {
	col := sort
	dir := "asc"
	if i := strings.IndexByte(sort, ','); i >= 0 {
		col = sort[:i]
		if strings.EqualFold(strings.TrimSpace(sort[i+1:]), "desc") {
			dir = "desc"
		}
	}
	col = strings.TrimSpace(col)
	if !allowed[col] {
		col = "id"
	}
	return col + " " + dir
}
