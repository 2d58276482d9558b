package attendance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// days builds records for consecutive January days from a string of P/A.
func days(s string) []Record {
	recs := make([]Record, 0, len(s))
	for i, c := range s {
		status := Present
		if c == 'A' {
			status = Absent
		}
		recs = append(recs, Record{Date: fmt.Sprintf("2024-01-%02d", i+1), Status: status})
	}
	return recs
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    Summary
	}{
		{name: "empty", records: nil, want: Summary{}},
		{name: "4 of 5", records: days("PPAPP"), want: Summary{Attended: 4, Total: 5, Percentage: 80}},
		{name: "all absent", records: days("AAA"), want: Summary{Attended: 0, Total: 3, Percentage: 0}},
		{name: "all present", records: days("PPP"), want: Summary{Attended: 3, Total: 3, Percentage: 100}},
		{name: "2 of 3 rounds up", records: days("PPA"), want: Summary{Attended: 2, Total: 3, Percentage: 67}},
		{name: "1 of 3 rounds down", records: days("PAA"), want: Summary{Attended: 1, Total: 3, Percentage: 33}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.records))
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		attended, total, want int
	}{
		{0, 0, 0},
		{1, 8, 13},  // 12.5
		{3, 8, 38},  // 37.5
		{5, 8, 63},  // 62.5
		{7, 8, 88},  // 87.5
		{1, 200, 1}, // 0.5
		{4, 5, 80},
		{3, 4, 75},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.attended, tt.total), func(t *testing.T) {
			got := Percentage(tt.attended, tt.total)
			assert.Equal(t, tt.want, got)
			assert.True(t, got >= 0 && got <= 100)
		})
	}
}

func TestAggregate_bounds(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for attended := 0; attended <= n; attended++ {
			recs := make([]Record, n)
			for i := range recs {
				recs[i] = Record{Date: fmt.Sprintf("2024-03-%02d", i+1), Status: Absent}
				if i < attended {
					recs[i].Status = Present
				}
			}
			s := Aggregate(recs)
			if s.Attended != attended || s.Total != n || s.Percentage < 0 || s.Percentage > 100 {
				t.Fatalf("Aggregate(%d/%d) = %+v", attended, n, s)
			}
		}
	}
}

func TestOverride(t *testing.T) {
	recs := days("PPAPP")

	tests := []struct {
		name        string
		date        string
		status      Status
		wantStatus  Status
		wantSummary Summary
		wantErr     error
	}{
		{name: "absent to present", date: "2024-01-03", status: Present, wantStatus: Present, wantSummary: Summary{Attended: 5, Total: 5, Percentage: 100}},
		{name: "present to absent", date: "2024-01-01", status: Absent, wantStatus: Absent, wantSummary: Summary{Attended: 3, Total: 5, Percentage: 60}},
		{name: "same status", date: "2024-01-02", status: Present, wantStatus: Present, wantSummary: Summary{Attended: 4, Total: 5, Percentage: 80}},
		{name: "missing date", date: "2024-02-01", status: Present, wantSummary: Summary{Attended: 4, Total: 5, Percentage: 80}, wantErr: ErrRecordNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, summary, err := Override(recs, tt.date, tt.status)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.wantSummary, summary)
			assert.Equal(t, Aggregate(got), summary)
			assert.Len(t, got, len(recs))
			if tt.wantErr != nil {
				assert.Equal(t, recs, got)
				return
			}
			for i, rec := range got {
				assert.Equal(t, recs[i].Date, rec.Date)
				if rec.Date == tt.date {
					assert.Equal(t, tt.wantStatus, rec.Status)
				} else {
					assert.Equal(t, recs[i].Status, rec.Status)
				}
			}
		})
	}

	// the input is never modified
	assert.Equal(t, days("PPAPP"), recs)
}

func TestOverride_idempotent(t *testing.T) {
	recs := days("PAPAP")
	once, s1, err := Override(recs, "2024-01-02", Present)
	assert.NoError(t, err)
	twice, s2, err := Override(once, "2024-01-02", Present)
	assert.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, s1, s2)
}

func TestOverride_roundTrip(t *testing.T) {
	recs := days("PAPAP")
	for _, rec := range recs {
		changed, _, err := Override(recs, rec.Date, Absent)
		assert.NoError(t, err)
		back, summary, err := Override(changed, rec.Date, rec.Status)
		assert.NoError(t, err)
		assert.Equal(t, recs, back)
		assert.Equal(t, Aggregate(recs), summary)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percentage int
		want       Standing
		low        bool
	}{
		{100, OK, false},
		{85, OK, false},
		{75, OK, false},
		{74, Warning, true},
		{70, Warning, true},
		{65, Warning, true},
		{64, Critical, true},
		{50, Critical, true},
		{0, Critical, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.percentage), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.percentage))
			assert.Equal(t, tt.low, IsLow(tt.percentage))
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		s       string
		want    Status
		wantErr error
	}{
		{s: "present", want: Present},
		{s: " ABSENT ", want: Absent},
		{s: "late", wantErr: ErrInvalidStatus},
		{s: "", wantErr: ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := ParseStatus(tt.s)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustRecords(t *testing.T) {
	assert.Equal(t, []Record{{Date: "2024-01-15", Status: Present}}, MustRecords("2024-01-15", "present"))
	assert.Panics(t, func() { MustRecords("2024-01-15") })
	assert.Panics(t, func() { MustRecords("2024-01-15", "late") })
	assert.Panics(t, func() { MustRecords("15-01-2024", "present") })
}

func TestOverride_status(t *testing.T) {
	recs := days("PPAPP")

	got, summary, err := Override(recs, "2024-01-03", "Present")
	assert.NoError(t, err)
	assert.Equal(t, Present, got[2].Status)
	assert.Equal(t, Summary{Attended: 5, Total: 5, Percentage: 100}, summary)

	got, summary, err = Override(recs, "2024-01-03", "late")
	assert.Equal(t, ErrInvalidStatus, err)
	assert.Equal(t, recs, got)
	assert.Equal(t, Summary{Attended: 4, Total: 5, Percentage: 80}, summary)
}
