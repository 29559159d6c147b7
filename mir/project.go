package mir

import "github.com/leikang123/noria/ast"

// LiteralProjection is a constant (name, value) pair appended to a
// Project's output.
type LiteralProjection struct {
	Name  string
	Value ast.Literal
}

// ArithmeticProjection is a computed (name, expression) pair appended to a
// Project's output.
type ArithmeticProjection struct {
	Name       string
	Expression ast.ArithmeticExpression
}

// ProjectKind is the payload of a Project node: the columns it passes
// through (Emit), plus any literal and arithmetic columns it adds.
type ProjectKind struct {
	Emit       []ast.Column
	Literals   []LiteralProjection
	Arithmetic []ArithmeticProjection
}

func (ProjectKind) Tag() KindTag { return KindProject }

// ProjectOptions configures NewProject's column naming, mirroring the
// original's make_project_node: when IsLeaf is set, emitted columns are
// renamed as if they belonged to the view itself (table <- name), since the
// node represents an externally visible view (spec §4.9 step 9-10).
type ProjectOptions struct {
	IsLeaf bool
}

// NewProject constructs a Project node over parent, emitting projCols
// (alias-resolved per opts) followed by the arithmetic and literal columns,
// in that order.
func NewProject(name string, version uint64, parent *MirNode, projCols []ast.Column, arithmetic []ArithmeticProjection, literals []LiteralProjection, opts ProjectOptions) *MirNode {
	fields := make([]ast.Column, 0, len(projCols)+len(arithmetic)+len(literals))
	emit := make([]ast.Column, 0, len(projCols))

	for _, c := range projCols {
		f := c
		if c.HasAlias() {
			f = ast.Column{Name: c.Alias, Function: c.Function}
			if opts.IsLeaf {
				f.Table = name
			} else {
				f.Table = c.Table
			}
		} else if opts.IsLeaf {
			f = sanitizeLeafColumn(c, name)
		}
		fields = append(fields, f)

		e := c
		e.Alias = ""
		emit = append(emit, e)
	}

	for _, a := range arithmetic {
		fields = append(fields, ast.Column{Name: a.Name, Table: name})
	}
	for _, l := range literals {
		fields = append(fields, ast.Column{Name: l.Name, Table: name})
	}

	return newNode(name, version, fields, ProjectKind{
		Emit:       emit,
		Literals:   append([]LiteralProjection(nil), literals...),
		Arithmetic: append([]ArithmeticProjection(nil), arithmetic...),
	}, []*MirNode{parent})
}
