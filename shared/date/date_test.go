package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"hms/shared/date"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := date.Parse("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.May, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2024-05-01", d.String())

	empty, err := date.Parse("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = date.Parse("01/05/2024")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		expected int
	}{
		{"two nights", "2024-05-01", "2024-05-03", 2},
		{"same day", "2024-05-01", "2024-05-01", 0},
		{"reversed", "2024-05-03", "2024-05-01", -2},
		{"across month end", "2024-01-30", "2024-02-02", 3},
		{"across leap day", "2024-02-28", "2024-03-01", 2},
		{"across year end", "2023-12-31", "2024-01-01", 1},
		{"whole calendar range", "0001-01-02", "9999-12-31", 3652057},
		{"whole calendar range reversed", "9999-12-31", "0001-01-02", -3652057},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, date.MustParse(tt.from).DaysUntil(date.MustParse(tt.to)))
		})
	}
}

func TestAddDaysAndCompare(t *testing.T) {
	d := date.MustParse("2024-02-28")

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.True(t, d.Equal(date.New(2024, time.February, 28)))
	assert.Equal(t, -1, d.Compare(d.AddDays(1)))
	assert.True(t, date.Date{}.AddDays(3).IsZero())
}

func TestOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	late := time.Date(2024, time.July, 9, 23, 30, 0, 0, jakarta)

	assert.Equal(t, "2024-07-09", date.Of(late).String())
	assert.True(t, date.Of(time.Time{}).IsZero())
}

func TestJSON(t *testing.T) {
	type payload struct {
		CheckIn  date.Date `json:"check_in"`
		CheckOut date.Date `json:"check_out"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"check_in":"2024-07-09","check_out":""}`), &p))
	assert.Equal(t, "2024-07-09", p.CheckIn.String())
	assert.True(t, p.CheckOut.IsZero())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in":"2024-07-09","check_out":""}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"check_in":"tomorrow"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"check_in":20240709}`), &p))
}

func TestOptional(t *testing.T) {
	fallback := date.MustParse("2024-01-01")

	assert.Equal(t, fallback, date.None().OrElse(fallback))
	assert.Equal(t, "2024-06-05", date.Some(date.MustParse("2024-06-05")).OrElse(fallback).String())
	assert.False(t, date.Some(date.Date{}).Valid)

	opt, err := date.ParseOptional("")
	require.NoError(t, err)
	assert.False(t, opt.Valid)

	opt, err = date.ParseOptional("2024-06-05")
	require.NoError(t, err)
	assert.True(t, opt.Valid)
	assert.Equal(t, "2024-06-05", opt.String())
}

func TestRange(t *testing.T) {
	open := date.Range{}
	start, end := open.Bounds()

	assert.True(t, open.IsOpen())
	assert.Equal(t, date.Floor, start)
	assert.Equal(t, date.Ceiling, end)

	r := date.Range{
		Start: date.Some(date.MustParse("2024-05-03")),
		End:   date.Some(date.MustParse("2024-05-05")),
	}

	tests := []struct {
		name              string
		checkIn, checkOut string
		expected          bool
	}{
		{"inside", "2024-05-03", "2024-05-04", true},
		{"straddles start", "2024-05-01", "2024-05-04", true},
		{"checks out on start", "2024-05-01", "2024-05-03", false},
		{"checks in on end", "2024-05-05", "2024-05-07", false},
		{"covers whole range", "2024-05-01", "2024-05-10", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Overlaps(date.MustParse(tt.checkIn), date.MustParse(tt.checkOut)))
		})
	}

	assert.False(t, open.Overlaps(date.Date{}, date.Date{}))
}
