package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the semantic type of a catalog field.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Flag
	OptionalInt
	StringList
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Flag:
		return "flag"
	case OptionalInt:
		return "optional-int"
	case StringList:
		return "string-list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Match defines how a search criterion on a field is compared to stored values.
type Match int

const (
	// Exact compares with equality.
	Exact Match = iota
	// Contains is a case-insensitive substring comparison.
	Contains
)

// Field describes one column of the catalog dataset.
type Field struct {
	Name     string // canonical wire name (CSV header, query parameter, JSON key)
	Column   string // storage column
	Kind     Kind
	Match    Match
	Required bool
	Aliases  []string
}

// fields is ordered by storage column position.
var fields = []Field{
	{Name: "AppID", Column: "app_id", Kind: Int, Match: Exact, Required: true},
	{Name: "Name", Column: "name", Kind: String, Match: Contains, Required: true},
	{Name: "Release_date", Column: "release_date", Kind: String, Match: Contains, Required: true, Aliases: []string{"Release date"}},
	{Name: "Required_age", Column: "required_age", Kind: Int, Match: Exact, Required: true, Aliases: []string{"Required age"}},
	{Name: "Price", Column: "price", Kind: Float, Match: Exact, Required: true},
	{Name: "DLC_count", Column: "dlc_count", Kind: Int, Match: Exact, Required: true, Aliases: []string{"DLC count"}},
	{Name: "About_the_game", Column: "about_the_game", Kind: String, Match: Contains, Required: true, Aliases: []string{"About the game"}},
	{Name: "Supported_languages", Column: "supported_languages", Kind: StringList, Match: Contains, Required: true, Aliases: []string{"Supported languages"}},
	{Name: "Windows", Column: "windows", Kind: Flag, Match: Exact, Required: true},
	{Name: "Mac", Column: "mac", Kind: Flag, Match: Exact, Required: true},
	{Name: "Linux", Column: "linux", Kind: Flag, Match: Exact, Required: true},
	{Name: "Positive", Column: "positive", Kind: Int, Match: Exact, Required: true},
	{Name: "Negative", Column: "negative", Kind: Int, Match: Exact, Required: true},
	{Name: "Score_rank", Column: "score_rank", Kind: OptionalInt, Match: Exact, Required: true, Aliases: []string{"Score rank"}},
	{Name: "Developers", Column: "developers", Kind: String, Match: Contains, Required: true},
	{Name: "Publishers", Column: "publishers", Kind: String, Match: Contains, Required: true},
	{Name: "Categories", Column: "categories", Kind: StringList, Match: Contains, Required: true},
	{Name: "Genres", Column: "genres", Kind: StringList, Match: Contains, Required: true},
	{Name: "Tags", Column: "tags", Kind: StringList, Match: Contains, Required: true},
}

// IndexColumns are synthetic index columns written by dataframe exports.
var IndexColumns = []string{"Unnamed: 0", ""}

var byName = func() map[string]Field {
	m := make(map[string]Field, len(fields)*2)
	for _, f := range fields {
		m[f.Name] = f
		for _, a := range f.Aliases {
			m[a] = f
		}
	}
	return m
}()

// Fields returns the catalog fields in storage column order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Columns returns the storage column names in order.
func Columns() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Column
	}
	return out
}

// Lookup resolves a canonical name or one of its aliases.
func Lookup(name string) (Field, bool) {
	f, ok := byName[strings.TrimSpace(name)]
	return f, ok
}

// Canonical maps a header name to its canonical form. Unknown names are
// returned unchanged.
func Canonical(name string) string {
	if f, ok := Lookup(name); ok {
		return f.Name
	}
	return name
}

// IsIndexColumn reports whether name is a synthetic index column.
func IsIndexColumn(name string) bool {
	name = strings.TrimSpace(name)
	for _, c := range IndexColumns {
		if name == c {
			return true
		}
	}
	return false
}

// ParseValue parses a textual value into the Go type used for f:
// int64 for Int, Flag and OptionalInt, float64 for Float and string
// otherwise. An empty OptionalInt parses to nil.
func ParseValue(f Field, raw string) (any, error) {
	s := strings.TrimSpace(raw)
	switch f.Kind {
	case Int, Flag, OptionalInt:
		if s == "" {
			if f.Kind == OptionalInt {
				return nil, nil
			}
			return nil, fmt.Errorf("%s: empty %s value", f.Name, f.Kind)
		}
		n, err := parseInt(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", f.Name, raw)
		}
		if f.Kind == Flag && n != 0 && n != 1 {
			return nil, fmt.Errorf("%s: flag must be 0 or 1, got %d", f.Name, n)
		}
		if f.Kind == Int && n < 0 {
			return nil, fmt.Errorf("%s: must not be negative, got %d", f.Name, n)
		}
		return n, nil
	case Float:
		if s == "" {
			return nil, fmt.Errorf("%s: empty float value", f.Name)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", f.Name, raw)
		}
		if v < 0 {
			return nil, fmt.Errorf("%s: must not be negative, got %v", f.Name, v)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// parseInt accepts integral floats ("12.0") as written by dataframe
// exports of nullable integer columns.
func parseInt(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != float64(int64(v)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int64(v), nil
}
