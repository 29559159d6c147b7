package mir

import "github.com/leikang123/noria/ast"

// sanitizeLeafColumn rewrites a column for display at a view boundary: the
// table becomes the view's own name, any function annotation is stripped
// (the function already ran further down the graph), and a self-referential
// alias (alias == name) is dropped as noise (spec §4.9 step 10, §4.10).
func sanitizeLeafColumn(c ast.Column, viewName string) ast.Column {
	c.Table = viewName
	c.Function = nil
	if c.Alias == c.Name {
		c.Alias = ""
	}
	return c
}

func sanitizeLeafColumns(cols []ast.Column, viewName string) []ast.Column {
	out := make([]ast.Column, len(cols))
	for i, c := range cols {
		out[i] = sanitizeLeafColumn(c, viewName)
	}
	return out
}
