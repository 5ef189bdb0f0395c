package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDayUTC_RespectsBusinessTimezone(t *testing.T) {
	require.NoError(t, Init("America/New_York"))
	t.Cleanup(func() { MustInit("UTC") })

	// 03:00 UTC on March 10th is still March 9th in New York
	ts := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 9, 5, 0, 0, 0, time.UTC), StartOfDayUTC(ts))
	assert.Equal(t, "2025-03-09", FormatBizDate(ts))
}

func TestLastNDays(t *testing.T) {
	MustInit("UTC")

	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, LastNDays(now, 4))
	assert.Nil(t, LastNDays(now, 0))
}

func TestInit_InvalidTimezone(t *testing.T) {
	assert.Error(t, Init("Mars/Olympus_Mons"))
}
