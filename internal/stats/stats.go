// Package stats reduces the full confirmation set into the dashboard numbers.
package stats

import (
	"math"
	"strings"

	"casamento/internal/models"
)

// Aggregate holds the derived statistics over all confirmations.
// JSON keys match the site's field names; nothing here is persisted.
type Aggregate struct {
	Total            int `json:"total"`
	Confirmed        int `json:"confirmados"`
	Declined         int `json:"recusados"`
	Tentative        int `json:"talvez"`
	TotalGuests      int `json:"totalConvidados"`
	WithMessage      int `json:"comMensagem"`
	WithoutMessage   int `json:"semMensagem"`
	ConfirmationRate int `json:"taxaConfirmacao"`
	AverageGuests    int `json:"mediaConvidados"`
}

// Compute derives the aggregate in a single pass over the records.
// Guest counts only contribute when the guest is attending. Rates and
// averages round to the nearest integer and are 0 when the denominator
// is 0, never an error.
func Compute(records []models.Confirmation) Aggregate {
	var agg Aggregate
	agg.Total = len(records)

	for _, rec := range records {
		switch rec.Attending {
		case models.AttendanceYes:
			agg.Confirmed++
			if rec.Guests > 0 {
				agg.TotalGuests += rec.Guests
			}
		case models.AttendanceNo:
			agg.Declined++
		case models.AttendanceMaybe:
			agg.Tentative++
		}

		if strings.TrimSpace(rec.Message) != "" {
			agg.WithMessage++
		} else {
			agg.WithoutMessage++
		}
	}

	if agg.Total > 0 {
		agg.ConfirmationRate = int(math.Round(float64(agg.Confirmed) / float64(agg.Total) * 100))
	}
	if agg.Confirmed > 0 {
		agg.AverageGuests = int(math.Round(float64(agg.TotalGuests) / float64(agg.Confirmed)))
	}

	return agg
}
