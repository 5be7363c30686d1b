package importer

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/models"
)

var (
	asOfQualifier = regexp.MustCompile(`\s*as of .*`)
	slashDate4    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	slashDate2    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)
	isoDatePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// ParseAmount converts a locale-formatted currency cell into a signed
// decimal. Currency symbols and thousands separators are stripped and a
// parenthesized value reads as negative. Empty cells, placeholders and
// anything non-numeric return ok=false rather than an error: a bad cell
// is a dropped row, never a failed import.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "--" || s == "N/A" {
		return decimal.Zero, false
	}
	s = strings.NewReplacer("$", "", ",", "", "(", "-", ")", "").Replace(s)
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDate normalizes a raw date cell to a UTC calendar date. A trailing
// "as of ..." qualifier is stripped first. Recognized forms, tried in
// order: M/D/YYYY, M/D/YY (assumed 20YY), and YYYY-MM-DD with any
// trailing time or offset truncated. Anything else returns ok=false and
// the caller discards the row.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(asOfQualifier.ReplaceAllString(raw, ""))
	if s == "" {
		return time.Time{}, false
	}

	var iso string
	if m := slashDate4.FindStringSubmatch(s); m != nil {
		iso = fmt.Sprintf("%s-%s-%s", m[3], pad2(m[1]), pad2(m[2]))
	} else if m := slashDate2.FindStringSubmatch(s); m != nil {
		iso = fmt.Sprintf("20%s-%s-%s", m[3], pad2(m[1]), pad2(m[2]))
	} else if m := isoDatePrefix.FindStringSubmatch(s); m != nil {
		iso = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	} else {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(models.DateLayout, iso, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
