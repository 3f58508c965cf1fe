package db

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// AlwaysTrue is the predicate produced when no condition is present. It keeps
// "WHERE " + predicate valid SQL.
const AlwaysTrue = "1=1"

var columnPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Column is a column reference written verbatim into predicate text.
//
// Columns must come from a fixed set declared in code (package level vars),
// never from request input: the name is not escaped or quoted.
type Column struct {
	name string
}

// MustColumn returns the Column for name, which must be a bare identifier or an
// alias qualified one such as "p.p_name". It panics otherwise.
func MustColumn(name string) Column {
	if !columnPattern.MatchString(name) {
		panic(fmt.Sprintf("db: invalid column reference %q", name))
	}
	return Column{name: name}
}

func (c Column) String() string {
	return c.name
}

// QueryCondition is one optional clause of a WHERE predicate.
// The only implementations are the ones returned by Exact and AnySubstring.
type QueryCondition interface {
	// render returns the clause text and its bind values, or false when the
	// clause is absent.
	render() (string, []interface{}, bool)
}

type exactCondition struct {
	field Column
	value interface{}
}

type anySubstringCondition struct {
	field    Column
	keywords []string
}

// Exact matches rows where field equals value. A nil value, a nil pointer, or
// a string that is empty or only whitespace makes the clause absent.
func Exact(field Column, value interface{}) QueryCondition {
	return exactCondition{field: field, value: value}
}

// ExactPtr is Exact for an optional request value.
func ExactPtr(field Column, value *string) QueryCondition {
	if value == nil {
		return exactCondition{field: field}
	}
	return exactCondition{field: field, value: *value}
}

// AnySubstring matches rows where field contains any of the whitespace
// separated words of input. Input without words makes the clause absent.
func AnySubstring(field Column, input string) QueryCondition {
	return anySubstringCondition{field: field, keywords: strings.Fields(input)}
}

// AnySubstringPtr is AnySubstring for an optional request value.
func AnySubstringPtr(field Column, input *string) QueryCondition {
	if input == nil {
		return anySubstringCondition{field: field}
	}
	return AnySubstring(field, *input)
}

func (c exactCondition) render() (string, []interface{}, bool) {
	value, ok := presentValue(c.value)
	if !ok {
		return "", nil, false
	}
	return c.field.name + " = ?", []interface{}{value}, true
}

func (c anySubstringCondition) render() (string, []interface{}, bool) {
	if len(c.keywords) == 0 {
		return "", nil, false
	}
	fragments := make([]string, 0, len(c.keywords))
	params := make([]interface{}, 0, len(c.keywords))
	for _, keyword := range c.keywords {
		fragments = append(fragments, c.field.name+" LIKE ?")
		params = append(params, "%"+keyword+"%")
	}
	return "(" + strings.Join(fragments, " OR ") + ")", params, true
}

// presentValue dereferences pointers and reports whether v counts as present.
func presentValue(v interface{}) (interface{}, bool) {
	switch value := v.(type) {
	case nil:
		return nil, false
	case string:
		return value, strings.TrimSpace(value) != ""
	case *string:
		if value == nil {
			return nil, false
		}
		return presentValue(*value)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		return presentValue(rv.Elem().Interface())
	}
	return v, true
}

// BuildPredicate AND-combines the present conditions, in order, into a single
// predicate and returns it with its bind values. Every value is bound through a
// "?" placeholder; the number of placeholders always equals len(params).
func BuildPredicate(conditions ...QueryCondition) (string, []interface{}) {
	clauses := make([]string, 0, len(conditions))
	params := make([]interface{}, 0, len(conditions))

	for _, condition := range conditions {
		if condition == nil {
			continue
		}
		clause, values, ok := condition.render()
		if !ok {
			continue
		}
		clauses = append(clauses, clause)
		params = append(params, values...)
	}

	if len(clauses) == 0 {
		return AlwaysTrue, params
	}
	return strings.Join(clauses, " AND "), params
}

// ApplyConditions adds the predicate built from conditions to query.
// gorm rewrites "?" into the dialect's bind variable.
func ApplyConditions(query *gorm.DB, conditions ...QueryCondition) *gorm.DB {
	predicate, params := BuildPredicate(conditions...)
	return query.Where(predicate, params...)
}
