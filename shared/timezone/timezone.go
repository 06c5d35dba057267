package timezone

import (
	"kmc/config"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultZone is where the guesthouse operates; stay dates and meal days are its calendar days.
const DefaultZone = "Asia/Seoul"

const layoutYMD = "20060102"

var appLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		name = DefaultZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return
	}

	appLocation = loc
}

func Now() time.Time {
	return time.Now().In(appLocation)
}

// Today is the current calendar day as YYYYMMDD.
func Today() string {
	return Now().Format(layoutYMD)
}

func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
