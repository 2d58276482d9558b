package attendance

import "errors"

// Thresholds used by Classify.
const (
	OKThreshold      = 75
	WarningThreshold = 65
)

var ErrRecordNotFound = errors.New("no attendance record for this date")

// Aggregate derives the attended/total counts and the rounded percentage of records.
// An empty sequence yields a zero Summary.
func Aggregate(records []Record) Summary {
	var attended int
	for _, rec := range records {
		if rec.Status == Present {
			attended++
		}
	}
	return Summary{
		Attended:   attended,
		Total:      len(records),
		Percentage: Percentage(attended, len(records)),
	}
}

// Percentage is round(attended / total * 100), rounding halves up. It is 0 when total is 0.
func Percentage(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*attended + total) / (2 * total)
}

// Override returns a copy of records with the status of the record dated `date` replaced by `status`,
// along with the recomputed Summary. `status` is normalised with ParseStatus.
// If it is invalid or no record matches, the records are returned unchanged together with
// ErrInvalidStatus or ErrRecordNotFound.
func Override(records []Record, date string, status Status) ([]Record, Summary, error) {
	status, err := ParseStatus(string(status))
	if err != nil {
		return records, Aggregate(records), err
	}

	idx := -1
	for i, rec := range records {
		if rec.Date == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return records, Aggregate(records), ErrRecordNotFound
	}

	updated := make([]Record, len(records))
	copy(updated, records)
	updated[idx] = Record{Date: records[idx].Date, Status: status}
	return updated, Aggregate(updated), nil
}

// Classify picks the display treatment of a percentage.
func Classify(percentage int) Standing {
	switch {
	case percentage >= OKThreshold:
		return OK
	case percentage >= WarningThreshold:
		return Warning
	default:
		return Critical
	}
}

// IsLow reports whether a percentage is below the attendance requirement.
func IsLow(percentage int) bool { return percentage < OKThreshold }
