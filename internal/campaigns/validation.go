package campaigns

import (
	"strconv"
	"time"
)

// ParseDonationAmount accepts only positive numeric amounts. Anything else is
// blocked here, before a request is ever issued.
func ParseDonationAmount(raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

// ValidateCampaignForm duplicates the upstream campaign rules so most
// mistakes are caught without a round trip. forCreate additionally requires
// the start date to lie in the future, matching the create endpoint.
func ValidateCampaignForm(title, description string, target float64, startDate, endDate string, forCreate bool) []string {
	var errs []string

	if title == "" {
		errs = append(errs, "Title is required")
	}
	if description == "" {
		errs = append(errs, "Description is required")
	}
	if target < 100 {
		errs = append(errs, "Target amount must be at least $100")
	}

	start, startOK := parseLocalDate(startDate)
	end, endOK := parseLocalDate(endDate)
	if !startOK {
		errs = append(errs, "Start date is required")
	}
	if !endOK {
		errs = append(errs, "End date is required")
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, "End date must be after start date")
	}
	if forCreate && startOK {
		y, m, d := time.Now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		if start.Before(today.AddDate(0, 0, 1)) {
			errs = append(errs, "Start date must be in the future")
		}
	}

	return errs
}
