package questions

import "strings"

// Category buckets questions by the kind of thinking they exercise.
// Starter affinity bonuses key off these.
type Category string

const (
	CategoryGraphing  Category = "graphing"
	CategoryTables    Category = "tables"
	CategoryAlgebraic Category = "algebraic"
)

// InferCategory guesses a row's category from its standard code first,
// then from keywords in the question text. Defaults to algebraic.
func InferCategory(row Row) Category {
	std := strings.ToUpper(row.Standard)
	for _, kw := range []string{"F-IF", "F-LE", "RATE", "SLOPE", "INTERCEPT", "GRAPH"} {
		if strings.Contains(std, kw) {
			return CategoryGraphing
		}
	}
	for _, kw := range []string{"TABLE", "MAPPING", "VALUES"} {
		if strings.Contains(std, kw) {
			return CategoryTables
		}
	}
	for _, kw := range []string{"A-REI", "SOLVE", "SIMPLIFY", "EQUATION", "A-CED", "A-SSE", "A-APR"} {
		if strings.Contains(std, kw) {
			return CategoryAlgebraic
		}
	}

	q := strings.ToLower(row.Text)
	switch {
	case strings.Contains(q, "table") || strings.Contains(q, "mapping") || strings.Contains(q, "values"):
		return CategoryTables
	case strings.Contains(q, "graph") || strings.Contains(q, "slope") || strings.Contains(q, "intercept"):
		return CategoryGraphing
	}
	return CategoryAlgebraic
}

// StarterCategory maps a starter creature's type string to a question
// category, or "" when the type matches none.
func StarterCategory(starterType string) Category {
	t := strings.ToLower(starterType)
	switch {
	case strings.Contains(t, "graph"):
		return CategoryGraphing
	case strings.Contains(t, "table"):
		return CategoryTables
	case strings.Contains(t, "algebra"):
		return CategoryAlgebraic
	}
	return ""
}
