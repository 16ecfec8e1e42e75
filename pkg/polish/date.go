package polish

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the default Polish date presentation, DD.MM.YYYY.
const DateLayout = "02.01.2006"

// parse fallbacks, tried in order
var dateLayouts = []string{DateLayout, "02/01/2006", "2006-01-02"}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDateAs(t time.Time, layout string) string {
	if layout == "" {
		layout = DateLayout
	}
	return t.Format(layout)
}

// ParseDate accepts DD.MM.YYYY, DD/MM/YYYY and YYYY-MM-DD. Unlike the
// validators it returns an error: date parsing sits behind a prior
// validation pass, so an unparseable string is a hard boundary.
func ParseDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("nierozpoznany format daty: %q", text)
}
