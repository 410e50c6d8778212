package search

import (
	"fmt"
	"strings"
	"time"
)

// AllCategories es el selector centinela: buscar en todos los campos.
const AllCategories = "all_categories"

// DateLayout es el único formato aceptado en queries sobre campos fecha.
const DateLayout = "2006-01-02"

// Result es lo que consume la capa de presentación.
// Columns repite ValuesFields para que la UI conozca el orden de proyección.
type Result struct {
	Rows     []Row    `json:"results"`
	Columns  []string `json:"columns"`
	Query    string   `json:"search_query"`
	Category string   `json:"category"`
}

// Resolve filtra y proyecta rows según la categoría y el texto de búsqueda.
//
// Reglas (ver también los tests):
//   - query vacío: sin filtro, se devuelve todo proyectado.
//   - all_categories: OR sobre AllFields; un campo fecha solo aporta cláusula
//     si el query parsea como fecha (si no, ese campo se salta en silencio).
//   - categoría concreta: substring case-insensitive si es texto; igualdad de
//     día si es fecha y el query parsea — si no parsea, queda SIN filtrar
//     (wildcard, no cero resultados).
//   - categoría desconocida: sin filtro. Tolerancia deliberada, no error.
func Resolve(rows []Row, category, query string, cfg Config) Result {
	out := Result{
		Columns:  cfg.ValuesFields,
		Query:    query,
		Category: category,
	}

	if query == "" {
		out.Rows = project(rows, cfg.ValuesFields)
		return out
	}

	switch {
	case category == AllCategories:
		day, dayOK := parseDay(query)
		filtered := make([]Row, 0, len(rows))
		for _, r := range rows {
			if matchAny(r, cfg.AllFields, query, day, dayOK) {
				filtered = append(filtered, r)
			}
		}
		out.Rows = project(filtered, cfg.ValuesFields)

	default:
		f, ok := cfg.Mappings[category]
		if !ok {
			// categoría no reconocida: equivale a listar todo
			out.Rows = project(rows, cfg.ValuesFields)
			return out
		}

		if f.Kind == KindDate {
			day, dayOK := parseDay(query)
			if !dayOK {
				// fecha inválida sobre categoría fecha => query base sin filtrar
				out.Rows = project(rows, cfg.ValuesFields)
				return out
			}
			filtered := make([]Row, 0, len(rows))
			for _, r := range rows {
				if matchDay(r[f.Name], day) {
					filtered = append(filtered, r)
				}
			}
			out.Rows = project(filtered, cfg.ValuesFields)
			return out
		}

		filtered := make([]Row, 0, len(rows))
		for _, r := range rows {
			if matchText(r[f.Name], query) {
				filtered = append(filtered, r)
			}
		}
		out.Rows = project(filtered, cfg.ValuesFields)
	}

	return out
}

func matchAny(r Row, fields []Field, query string, day time.Time, dayOK bool) bool {
	for _, f := range fields {
		if f.Kind == KindDate {
			if dayOK && matchDay(r[f.Name], day) {
				return true
			}
			continue
		}
		if matchText(r[f.Name], query) {
			return true
		}
	}
	return false
}

func matchText(v any, query string) bool {
	return strings.Contains(strings.ToLower(stringValue(v)), strings.ToLower(query))
}

func matchDay(v any, day time.Time) bool {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return false
		}
		t = *x
	default:
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func project(rows []Row, fields []string) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		p := make(Row, len(fields))
		for _, name := range fields {
			p[name] = r[name]
		}
		out = append(out, p)
	}
	return out
}

func stringValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(DateLayout)
	default:
		return fmt.Sprintf("%v", x)
	}
}
