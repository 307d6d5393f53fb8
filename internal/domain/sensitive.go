package domain

// Category is a sensitive-attribute category detected by the bias scanner.
type Category string

// The five fixed sensitive categories.
const (
	CategoryAge             Category = "age"
	CategoryGenderedTerms   Category = "gendered_terms"
	CategoryNationality     Category = "nationality_immigration"
	CategoryReligion        Category = "religion"
	CategoryMaritalParental Category = "marital_parental"
)

// Categories returns all categories in canonical scan order.
func Categories() []Category {
	return []Category{
		CategoryAge,
		CategoryGenderedTerms,
		CategoryNationality,
		CategoryReligion,
		CategoryMaritalParental,
	}
}

// SensitiveFindings maps a category to the deduplicated, lower-cased literal
// substrings matched in the text. Categories without hits are absent.
type SensitiveFindings map[Category][]string

// Detected returns the categories present in the findings, in canonical order.
func (f SensitiveFindings) Detected() []string {
	var out []string
	for _, c := range Categories() {
		if len(f[c]) > 0 {
			out = append(out, string(c))
		}
	}
	return out
}
