package search

import (
	"errors"
	"fmt"
	"strconv"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/schema"
	"gamecatalog/backend/internal/store"
)

var errNull = errors.New("unexpected NULL")

// Unmarshal rebuilds a catalog entry from a stored row in schema.Columns
// order. List columns are split on the list delimiter; NULL or empty lists
// decode to empty slices and a NULL Score_rank stays absent.
func Unmarshal(row store.RawRow) (models.CatalogEntry, error) {
	var e models.CatalogEntry
	fields := schema.Fields()
	if len(row) != len(fields) {
		return e, &RowDecodeError{Column: "*", cause: fmt.Errorf("got %d columns, want %d", len(row), len(fields))}
	}

	for i, f := range fields {
		if err := decodeField(&e, f, row[i]); err != nil {
			return models.CatalogEntry{}, &RowDecodeError{Column: f.Name, AppID: row[0], cause: err}
		}
	}
	return e, nil
}

func decodeField(e *models.CatalogEntry, f schema.Field, v any) error {
	switch f.Kind {
	case schema.StringList:
		s, err := toString(v, true)
		if err != nil {
			return err
		}
		setList(e, f.Name, schema.DecodeList(s))
	case schema.String:
		s, err := toString(v, f.Name == "Developers" || f.Name == "Publishers")
		if err != nil {
			return err
		}
		setString(e, f.Name, s)
	case schema.Float:
		x, err := toFloat(v)
		if err != nil {
			return err
		}
		e.Price = x
	case schema.OptionalInt:
		if v == nil {
			e.ScoreRank = nil
			return nil
		}
		n, err := toInt(v)
		if err != nil {
			return err
		}
		e.ScoreRank = &n
	case schema.Int, schema.Flag:
		n, err := toInt(v)
		if err != nil {
			return err
		}
		if f.Kind == schema.Flag && n != 0 && n != 1 {
			return fmt.Errorf("flag value %d", n)
		}
		setInt(e, f.Name, n)
	}
	return nil
}

func toString(v any, nullable bool) (string, error) {
	switch x := v.(type) {
	case nil:
		if nullable {
			return "", nil
		}
		return "", errNull
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	default:
		return "", fmt.Errorf("unexpected %T for text column", v)
	}
}

func toInt(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errNull
	case int64:
		return x, nil
	case int32:
		return int64(x), nil
	case int:
		return int64(x), nil
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("non-integral value %v", x)
		}
		return int64(x), nil
	case []byte:
		return strconv.ParseInt(string(x), 10, 64)
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected %T for integer column", v)
	}
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errNull
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case []byte:
		return strconv.ParseFloat(string(x), 64)
	case string:
		// numeric columns on postgres
		return strconv.ParseFloat(x, 64)
	default:
		return 0, fmt.Errorf("unexpected %T for float column", v)
	}
}

func setString(e *models.CatalogEntry, name, s string) {
	switch name {
	case "Name":
		e.Name = s
	case "Release_date":
		e.ReleaseDate = s
	case "About_the_game":
		e.AboutTheGame = s
	case "Developers":
		e.Developers = s
	case "Publishers":
		e.Publishers = s
	}
}

func setInt(e *models.CatalogEntry, name string, n int64) {
	switch name {
	case "AppID":
		e.AppID = n
	case "Required_age":
		e.RequiredAge = n
	case "DLC_count":
		e.DLCCount = n
	case "Windows":
		e.Windows = n
	case "Mac":
		e.Mac = n
	case "Linux":
		e.Linux = n
	case "Positive":
		e.Positive = n
	case "Negative":
		e.Negative = n
	}
}

func setList(e *models.CatalogEntry, name string, l []string) {
	switch name {
	case "Supported_languages":
		e.SupportedLanguages = l
	case "Categories":
		e.Categories = l
	case "Genres":
		e.Genres = l
	case "Tags":
		e.Tags = l
	}
}
