package domain

import (
	"strconv"
	"strings"

	"github.com/clubnatacion/swimclub-backend/internal/swimtime"
)

// noMarkSentinel marks a standard without a minimum time in the source sheet.
const noMarkSentinel = "S/MM"

// ImportReport summarizes one bulk import pass.
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ParseSheet parses clipboard text pasted from the federation's standards
// sheet into standard rows. The delimiter is autodetected, a header row is
// skipped when present, and any row that fails to parse is counted as
// skipped without aborting the rest of the import.
func ParseSheet(text string, seasonYear int) ([]*QualifyingStandard, int) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	delim := detectDelimiter(lines)

	var rows []*QualifyingStandard
	skipped := 0
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first {
			first = false
			if isHeader(line) {
				continue
			}
		}
		row, ok := parseRow(line, delim, seasonYear)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

// detectDelimiter picks whichever of tab, semicolon or comma splits the
// first non-empty line into the most fields.
func detectDelimiter(lines []string) string {
	first := ""
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			first = line
			break
		}
	}

	best, bestCount := ",", 0
	for _, d := range []string{"\t", ";", ","} {
		if n := strings.Count(first, d); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func isHeader(line string) bool {
	return strings.Contains(strings.ToLower(line), "categoria") ||
		strings.Contains(strings.ToLower(line), "categoría")
}

// parseRow expects columns: categoria, genero, distancia, estilo, marca.
func parseRow(line, delim string, seasonYear int) (*QualifyingStandard, bool) {
	fields := strings.Split(line, delim)
	if len(fields) < 5 {
		return nil, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	category := fields[0]
	gender := normalizeGender(fields[1])
	style := fields[3]
	if category == "" || gender == "" || style == "" {
		return nil, false
	}

	distance, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(fields[2]), "m"))
	if err != nil || distance <= 0 {
		return nil, false
	}

	row := &QualifyingStandard{
		SeasonYear: seasonYear,
		Category:   category,
		Gender:     gender,
		Distance:   distance,
		Style:      style,
	}

	mark := fields[4]
	if !strings.EqualFold(mark, noMarkSentinel) {
		ms, err := swimtime.ParseDisplay(mark)
		if err != nil {
			return nil, false
		}
		row.TimeMs = &ms
		row.Display = swimtime.FormatMs(ms)
	}
	return row, true
}

// normalizeGender maps the sheet's gender column ("F", "M", "Femenino",
// "Masculino") to the single-letter code used in doc ids.
func normalizeGender(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "F", "FEMENINO", "DAMAS":
		return "F"
	case "M", "MASCULINO", "VARONES":
		return "M"
	default:
		return ""
	}
}
