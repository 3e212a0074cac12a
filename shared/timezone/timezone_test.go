package timezone_test

import (
	"testing"
	"time"

	"hms/shared/date"
	"hms/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())

	timezone.Init("Not/AZone")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.Init("")
	assert.Equal(t, "UTC", timezone.GetLocation().String())
}

func TestToday(t *testing.T) {
	timezone.Init("UTC")

	assert.Equal(t, date.Of(time.Now().UTC()), timezone.Today())
	assert.False(t, timezone.Now().IsZero())
}

func TestFormat(t *testing.T) {
	t.Cleanup(func() { timezone.Init("UTC") })

	timezone.Init("Asia/Jakarta")

	utc := time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02 03:00", timezone.Format(utc, "2006-01-02 15:04"))
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(utc).Location())
}
