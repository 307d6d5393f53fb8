package textproc

import (
	"regexp"
	"strconv"
	"strings"
)

// yearsPattern matches "3 years", "2+ years", "4.5 years" and similar.
var yearsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*years`)

// YearsOfExperience scans text for "<number> years" mentions and returns the
// maximum value found, or 0.0 when none matched. Never fails on malformed
// input.
func YearsOfExperience(text string) float64 {
	t := strings.ToLower(Normalize(text))

	var maxYears float64
	for _, m := range yearsPattern.FindAllStringSubmatch(t, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if v > maxYears {
			maxYears = v
		}
	}
	return maxYears
}
