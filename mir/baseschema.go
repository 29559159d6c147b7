package mir

import "github.com/leikang123/noria/ast"

// makeBaseNode implements BaseSchemaAdapter (spec §4.3): given a table name,
// its current column list, an optional primary key, and whether it's
// transactional, either reuses an identical prior schema, adapts a prior
// schema in place for a pure add/remove/add+remove change, or builds a
// fresh Base node.
func (c *Converter) makeBaseNode(name string, specs []ast.ColumnSpecification, keys []ast.TableKey, transactional bool) *MirNode {
	if entries := c.store.schemasNewestFirst(name); len(entries) > 0 {
		for _, entry := range entries {
			if ast.ColumnSpecsEqual(entry.columns, specs) {
				c.log.WithField("table", name).WithField("version", entry.version).
					Info("base table already exists with identical schema; reusing it")
				existing := c.store.nodes[nodeKey{name, entry.version}]
				return NewReuse(existing, c.store.schemaVersion)
			}

			c.log.WithField("table", name).WithField("version", entry.version).
				Info("base table already exists, but has a different schema")

			var added, removed []ast.ColumnSpecification
			for _, cs := range specs {
				if !ast.ColumnSpecsContain(entry.columns, cs) {
					added = append(added, cs)
				}
			}
			unchanged := 0
			for _, cs := range specs {
				if ast.ColumnSpecsContain(entry.columns, cs) {
					unchanged++
				}
			}
			for _, cs := range entry.columns {
				if !ast.ColumnSpecsContain(specs, cs) {
					removed = append(removed, cs)
				}
			}

			if unchanged > 0 && (len(added) > 0 || len(removed) > 0) {
				c.log.WithField("table", name).
					WithField("added", len(added)).
					WithField("removed", len(removed)).
					WithField("over_version", entry.version).
					Info("adapting base schema with added/removed columns")

				existing := c.store.nodes[nodeKey{name, entry.version}]
				existingBase := existing.Kind.(BaseKind)

				columns := append([]ast.Column(nil), existing.Columns...)
				newSpecs := append([]ast.ColumnSpecification(nil), existingBase.ColumnSpecs...)
				for _, a := range added {
					columns = append(columns, a.Column)
					newSpecs = append(newSpecs, a)
				}
				for _, r := range removed {
					pos := -1
					for i, cc := range columns {
						if cc.Equals(r.Column) {
							pos = i
							break
						}
					}
					columns = append(columns[:pos], columns[pos+1:]...)
					for i, cc := range newSpecs {
						if cc.Equals(r) {
							newSpecs = append(newSpecs[:i], newSpecs[i+1:]...)
							break
						}
					}
				}
				if len(columns) != len(existing.Columns)+len(added)-len(removed) {
					panic(ErrAdaptedColumnCountMismatch.New(name))
				}

				c.store.recordBaseSchema(name, c.store.schemaVersion, newSpecs)
				return newAdaptedBase(name, c.store.schemaVersion, columns, newSpecs, existing, added, removed, transactional)
			}

			c.log.WithField("table", name).Info("base table has complex schema change; creating a new base node")
			break
		}
	}

	for _, cs := range specs {
		if cs.Column.Table != name {
			panic(ErrBaseColumnTableMismatch.New(name, cs.Column.Name, cs.Column.Table))
		}
	}

	var primaryKeys []ast.TableKey
	for _, k := range keys {
		if k.Kind == ast.PrimaryKey {
			primaryKeys = append(primaryKeys, k)
		}
	}
	if len(primaryKeys) > 1 {
		panic(ErrMultiplePrimaryKeys.New(name))
	}

	c.store.recordBaseSchema(name, c.store.schemaVersion, specs)

	var pk []ast.Column
	if len(primaryKeys) == 1 {
		pk = primaryKeys[0].Columns
		c.log.WithField("table", name).WithField("key", columnNames(pk)).Debug("assigning primary key for base table")
	}

	return NewBase(name, c.store.schemaVersion, specs, pk, transactional)
}

func columnNames(cols []ast.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
