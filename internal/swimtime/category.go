package swimtime

// Age-bracket categories follow the federation table. The bracket depends on
// seasonYear - birthYear only; month and day are ignored, so two athletes born
// in the same year always share a category for a given season.

var categoryByAge = map[int]string{
	10: "INF A1",
	11: "INF A2",
	12: "INF B1",
	13: "INF B2",
	14: "JUV A1",
	15: "JUV A2",
	16: "JUV B1",
	17: "JUV B2",
}

// Category returns the bracket label for an athlete born in birthYear during
// the given season year.
func Category(birthYear, seasonYear int) string {
	age := seasonYear - birthYear
	if age < 10 {
		return "PROM"
	}
	if age >= 18 {
		return "TC"
	}
	return categoryByAge[age]
}

// AgeInSeason returns the federation age (season year minus birth year).
func AgeInSeason(birthYear, seasonYear int) int {
	return seasonYear - birthYear
}
