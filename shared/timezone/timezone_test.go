package timezone_test

import (
	"kmc/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	today := timezone.Today()

	require.Len(t, today, 8)
	assert.Equal(t, timezone.Now().Format("20060102"), today)
}

func TestFormat(t *testing.T) {
	instant := time.Date(2025, 10, 14, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, instant.In(timezone.GetLocation()).Format(time.RFC3339), timezone.Format(instant, time.RFC3339))
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(instant).Location())
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("20060102", "20251015")

	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, 15, parsed.Day())

	_, err = timezone.Parse("20060102", "2025-10-15")
	assert.Error(t, err)
}
