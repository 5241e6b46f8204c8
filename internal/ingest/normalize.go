package ingest

import (
	"encoding/json"
	"fmt"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/schema"
)

// Normalize maps t onto the catalog schema: alias columns are renamed,
// index columns dropped, the header is checked for every required column
// and each cell is parsed into its stored form. Either every row converts
// or none is returned.
func Normalize(t *Table) ([]models.GameRow, error) {
	idx, err := resolveHeader(t.Header)
	if err != nil {
		return nil, err
	}

	fields := schema.Fields()
	rows := make([]models.GameRow, 0, len(t.Rows))
	firstSeen := make(map[int64]int, len(t.Rows))

	for r, cells := range t.Rows {
		var row models.GameRow
		for _, f := range fields {
			pos, ok := idx[f.Name]
			if !ok {
				continue
			}
			var cell any
			if pos < len(cells) {
				cell = cells[pos]
			}
			v, err := cellValue(f, cell)
			if err != nil {
				return nil, &CellError{Row: r + 1, Column: f.Name, Value: cell, cause: err}
			}
			assign(&row, f.Name, v)
		}

		if prev, dup := firstSeen[row.AppID]; dup {
			return nil, &DuplicateKeyError{AppID: row.AppID, Rows: [2]int{prev, r + 1}}
		}
		firstSeen[row.AppID] = r + 1
		rows = append(rows, row)
	}
	return rows, nil
}

// resolveHeader returns the position of each canonical column.
func resolveHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	var dup []string
	for i, h := range header {
		if schema.IsIndexColumn(h) {
			continue
		}
		name := schema.Canonical(h)
		if _, ok := idx[name]; ok {
			dup = append(dup, name)
			continue
		}
		idx[name] = i
	}

	var missing []string
	for _, f := range schema.Fields() {
		if _, ok := idx[f.Name]; f.Required && !ok {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 || len(dup) > 0 {
		return nil, &SchemaValidationError{Missing: missing, Duplicate: dup}
	}
	return idx, nil
}

// cellValue converts a raw cell to int64, *int64, float64 or string.
func cellValue(f schema.Field, cell any) (any, error) {
	if f.Kind == schema.StringList {
		return listValue(cell)
	}

	var raw string
	switch v := cell.(type) {
	case nil:
	case string:
		raw = v
	case json.Number:
		raw = v.String()
	case bool:
		if f.Kind != schema.Flag {
			return nil, fmt.Errorf("unexpected boolean for %s field", f.Kind)
		}
		if v {
			raw = "1"
		} else {
			raw = "0"
		}
	default:
		return nil, fmt.Errorf("unexpected %T for %s field", cell, f.Kind)
	}

	v, err := schema.ParseValue(f, raw)
	if err != nil {
		return nil, err
	}
	if f.Kind == schema.OptionalInt {
		if v == nil {
			return (*int64)(nil), nil
		}
		n := v.(int64)
		return &n, nil
	}
	return v, nil
}

// listValue stores a list cell in canonical form: elements trimmed, empty
// ones dropped, joined with schema.ListDelimiter.
func listValue(cell any) (string, error) {
	switch v := cell.(type) {
	case nil:
		return "", nil
	case string:
		if schema.IsLiteralList(v) {
			return "", schema.ErrLiteralList
		}
		return schema.EncodeList(schema.CleanList(schema.DecodeList(v)))
	case []string:
		return schema.EncodeList(schema.CleanList(v))
	case []any:
		elems := make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return "", fmt.Errorf("list element %d is %T, want string", i, e)
			}
			elems[i] = s
		}
		return schema.EncodeList(schema.CleanList(elems))
	default:
		return "", fmt.Errorf("unexpected %T for list field", cell)
	}
}

func assign(row *models.GameRow, name string, v any) {
	switch name {
	case "AppID":
		row.AppID = v.(int64)
	case "Name":
		row.Name = v.(string)
	case "Release_date":
		row.ReleaseDate = v.(string)
	case "Required_age":
		row.RequiredAge = v.(int64)
	case "Price":
		row.Price = v.(float64)
	case "DLC_count":
		row.DLCCount = v.(int64)
	case "About_the_game":
		row.AboutTheGame = v.(string)
	case "Supported_languages":
		row.SupportedLanguages = v.(string)
	case "Windows":
		row.Windows = v.(int64)
	case "Mac":
		row.Mac = v.(int64)
	case "Linux":
		row.Linux = v.(int64)
	case "Positive":
		row.Positive = v.(int64)
	case "Negative":
		row.Negative = v.(int64)
	case "Score_rank":
		row.ScoreRank = v.(*int64)
	case "Developers":
		row.Developers = v.(string)
	case "Publishers":
		row.Publishers = v.(string)
	case "Categories":
		row.Categories = v.(string)
	case "Genres":
		row.Genres = v.(string)
	case "Tags":
		row.Tags = v.(string)
	}
}
