package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the exported `db`-tagged fields of model.
// Columns listed in omit (typically generated keys) are left out.
func InsertModel(table string, model any, suffix string, omit ...string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model, omit)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel builds an UPDATE assigning every `db`-tagged field of model except omit.
func UpdateModel(table string, model any, where Condition, omit ...string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model, omit)
	if err != nil {
		return "", nil, err
	}

	b := Update(table)
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b.SetExpr("updated_at", "NOW()").Where(where).ToSQL()
}

// Columns lists the `db` column names of model in field order.
func Columns(model any) ([]string, error) {
	cols, _, err := columnsAndValuesFromModel(model, nil)
	return cols, err
}

func columnsAndValuesFromModel(model any, omit []string) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	skip := make(map[string]struct{}, len(omit))
	for _, col := range omit {
		skip[col] = struct{}{}
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		if _, ok := skip[col]; ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
