package pdf

import (
	"strconv"
	"strings"
	"time"
)

// euro formats whole euros the German way: 12.345 €.
func euro(v int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.Itoa(v)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	s := b.String() + " €"
	if neg {
		return "-" + s
	}
	return s
}

func germanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(berlin).Format("02.01.2006")
}

var berlin = loadBerlin()

func loadBerlin() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return time.UTC
	}
	return loc
}
