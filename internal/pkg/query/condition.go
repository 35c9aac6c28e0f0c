package query

import "fmt"

// Condition represents a WHERE clause condition.
// SQL returns the fragment and its parameters, named from paramIndex upwards (@p0, @p1, ...).
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

// comparison is a binary column/value predicate.
type comparison struct {
	field    string
	operator string
	value    interface{}
}

func (c *comparison) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.operator, name), map[string]interface{}{name: c.value}
}

// Eq generates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &comparison{field: field, operator: "=", value: value}
}

// Ne generates "field != @pN".
func Ne(field string, value interface{}) Condition {
	return &comparison{field: field, operator: "!=", value: value}
}
