package campaigns

import (
	"time"

	"github.com/FundSpring/FS-Web/internal/upstream"
)

// dateLayouts are the start_date shapes the upstream has been seen emitting.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseLocalDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByStartDate keeps campaigns whose start date falls on the given
// calendar day, compared in local terms; time of day and zone offsets are
// ignored. An empty or unparseable search date returns the list unchanged.
func FilterByStartDate(campaigns []upstream.Campaign, searchDate string) []upstream.Campaign {
	if searchDate == "" {
		return campaigns
	}

	want, ok := parseLocalDate(searchDate)
	if !ok {
		return campaigns
	}
	wantY, wantM, wantD := want.Date()

	var filtered []upstream.Campaign
	for _, c := range campaigns {
		start, ok := parseLocalDate(c.StartDate)
		if !ok {
			continue
		}
		y, m, d := start.In(time.Local).Date()
		if y == wantY && m == wantM && d == wantD {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
