package search

import (
	"errors"
	"fmt"
	"strings"

	"gamecatalog/backend/internal/schema"
	"gamecatalog/backend/internal/store"
)

// ErrUnknownCriterion is returned for a criterion that names no catalog field.
var ErrUnknownCriterion = errors.New("unknown search criterion")

// Criteria maps canonical field names to typed values: int64 for integer
// and flag fields, float64 for Price, string otherwise.
//
// Zero values (0, 0.0, "") are treated as absent and do not constrain the
// result, so Windows=0 or Required_age=0 cannot be filtered on.
type Criteria map[string]any

// Compile folds the present criteria into a parameterized predicate, one
// conjunct per field in schema order. Exact fields compare with equality;
// text and list fields match a case-insensitive substring, so a list query
// for "RPG" also matches an element "RPGMaker".
func Compile(c Criteria) (store.Predicate, error) {
	for name := range c {
		if f, ok := schema.Lookup(name); !ok || f.Name != name {
			return store.Predicate{}, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
		}
	}

	var b builder
	for _, f := range schema.Fields() {
		v, ok := c[f.Name]
		if !ok || isZero(v) {
			continue
		}
		switch f.Match {
		case schema.Exact:
			if err := checkType(f, v); err != nil {
				return store.Predicate{}, err
			}
			b.add(f.Column+" = ?", v)
		case schema.Contains:
			s, ok := v.(string)
			if !ok {
				return store.Predicate{}, fmt.Errorf("criterion %s: want string, got %T", f.Name, v)
			}
			b.add("LOWER("+f.Column+") LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(s))+"%")
		}
	}
	return b.predicate(), nil
}

// builder accumulates predicate fragments and their bound values.
type builder struct {
	frags []string
	args  []any
}

func (b *builder) add(frag string, arg any) {
	b.frags = append(b.frags, frag)
	b.args = append(b.args, arg)
}

func (b *builder) predicate() store.Predicate {
	return store.Predicate{SQL: strings.Join(b.frags, " AND "), Args: b.args}
}

func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case int64:
		return x == 0
	case int:
		return x == 0
	case float64:
		return x == 0
	case string:
		return x == ""
	default:
		return false
	}
}

func checkType(f schema.Field, v any) error {
	switch f.Kind {
	case schema.Float:
		if _, ok := v.(float64); ok {
			return nil
		}
	default:
		switch v.(type) {
		case int64, int:
			return nil
		}
	}
	return fmt.Errorf("criterion %s: unexpected %T for %s field", f.Name, v, f.Kind)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
