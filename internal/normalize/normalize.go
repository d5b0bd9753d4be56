// Package normalize converts raw spreadsheet cell values into canonical
// typed values. Every function is pure and total: malformed input yields an
// explicit absence (zero value plus false), never an error or a silent zero.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/oficinagl/garantia/internal/model"
)

// Spreadsheet date serials count days since 1899-12-30 (the Lotus epoch with
// its leap-year bug already folded in, which every export format inherits).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	dmyPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	ymdPattern = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
)

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases a string and strips diacritics, so "Março" and "marco"
// compare equal. Used by month parsing and by the defect classifier.
func Fold(s string) string {
	stripped, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(stripped)
}

// ParseDate interprets a raw cell as a calendar date. It accepts a
// spreadsheet date serial, an ISO-like YYYY-MM-DD string, or a DD/MM/YYYY
// string (slash or dash separated). The reported date is UTC, truncated to
// midnight. The second return is false when no interpretation succeeds.
func ParseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return toUTCDate(v), true
	case float64:
		return serialToDate(v)
	case float32:
		return serialToDate(float64(v))
	case int:
		return serialToDate(float64(v))
	case int64:
		return serialToDate(float64(v))
	case string:
		return parseDateString(v)
	}
	return time.Time{}, false
}

func serialToDate(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 {
		return time.Time{}, false
	}
	d := serialEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
	return toUTCDate(d), true
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := ymdPattern.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		return makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1]))
	}

	// Timestamps like 2024-03-07T00:00:00Z show up when an export went
	// through JSON at some point.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return toUTCDate(t), true
	}

	// Bare numeric strings are date serials.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialToDate(serial)
	}

	return time.Time{}, false
}

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); treat that as invalid.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func toUTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Portuguese month names in calendar order, already folded.
var monthNames = []string{
	"janeiro", "fevereiro", "marco", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Spelling corrections and abbreviations seen in real exports. Keys are
// folded forms.
var monthAliases = map[string]string{
	"setemebro": "setembro",
	"setemebto": "setembro",
	"setemrbo":  "setembro",
	"setemro":   "setembro",
	"novbro":    "novembro",
	"novemrbo":  "novembro",
	"dezembroo": "dezembro",
	"jan":       "janeiro",
	"fev":       "fevereiro",
	"mar":       "marco",
	"abr":       "abril",
	"mai":       "maio",
	"jun":       "junho",
	"jul":       "julho",
	"ago":       "agosto",
	"set":       "setembro",
	"out":       "outubro",
	"nov":       "novembro",
	"dez":       "dezembro",
}

// ParseMonth interprets a raw cell as a month number 1..12. It accepts
// integers, numeral strings, and Portuguese month names (full, abbreviated,
// or with common typos), case- and diacritic-insensitively.
func ParseMonth(value any) (int, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return monthInRange(v)
	case int64:
		return monthInRange(int(v))
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return monthInRange(int(v))
	case string:
		folded := strings.ReplaceAll(Fold(strings.TrimSpace(v)), " ", "")
		if folded == "" {
			return 0, false
		}
		if alias, ok := monthAliases[folded]; ok {
			folded = alias
		}
		for i, name := range monthNames {
			if name == folded {
				return i + 1, true
			}
		}
		if n, err := strconv.Atoi(folded); err == nil {
			return monthInRange(n)
		}
	}
	return 0, false
}

func monthInRange(n int) (int, bool) {
	if n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

// ParseNumber interprets a raw cell as a decimal amount. Strings may use
// either "." or "," as the decimal separator; "1.234,56" style thousands
// grouping is understood. Empty strings and non-numeric text yield absence.
func ParseNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return ParseNumber(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		if strings.Contains(s, ",") {
			// Comma is the decimal separator; dots before it are grouping.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// MapStatus maps a raw status code to its canonical warranty status.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unrecognized non-empty values are returned unchanged (pass-through); the
// validation gate decides what to do with them. Absent input yields absence.
func MapStatus(value any) (string, bool) {
	var raw string
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		raw = v
	default:
		return "", false
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	switch strings.ToUpper(trimmed) {
	case "G":
		return model.StatusGarantia, true
	case "GO":
		return model.StatusGarantiaOficina, true
	case "GU":
		return model.StatusGarantiaUsinagem, true
	}
	return trimmed, true
}
