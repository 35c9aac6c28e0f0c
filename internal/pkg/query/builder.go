// Package query builds parameterized Spanner SELECT statements for the catalog tables.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type ordering struct {
	column    string
	direction Direction
}

// Builder constructs SELECT statements. Every method returns a new Builder,
// so a partially built query can be shared as a base.
type Builder struct {
	table      string
	columns    []string
	conditions []Condition
	orderings  []ordering
	limit      int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns to the select list. No columns selects *.
func (b *Builder) Select(columns ...string) *Builder {
	out := b.clone()
	out.columns = append(out.columns, columns...)
	return out
}

// Where adds a condition. Conditions are combined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	out := b.clone()
	out.conditions = append(out.conditions, condition)
	return out
}

// OrderBy appends a sort key. Earlier keys take precedence.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	out := b.clone()
	out.orderings = append(out.orderings, ordering{column: column, direction: direction})
	return out
}

// Limit caps the number of rows. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	out := b.clone()
	out.limit = limit
	return out
}

// Build renders the statement. Condition parameters are named @p0, @p1, ... in Where order.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.columns, ", "))
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.conditions) > 0 {
		parts := make([]string, 0, len(b.conditions))
		paramIndex := 0
		for _, condition := range b.conditions {
			fragment, condParams := condition.SQL(paramIndex)
			parts = append(parts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderings) > 0 {
		parts := make([]string, 0, len(b.orderings))
		for _, o := range b.orderings {
			dir := "ASC"
			if o.direction == Desc {
				dir = "DESC"
			}
			parts = append(parts, o.column+" "+dir)
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(parts, ", "))
	}

	if b.limit > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limit
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	return &Builder{
		table:      b.table,
		columns:    append([]string(nil), b.columns...),
		conditions: append([]Condition(nil), b.conditions...),
		orderings:  append([]ordering(nil), b.orderings...),
		limit:      b.limit,
	}
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
