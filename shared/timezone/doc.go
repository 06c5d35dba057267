// Package timezone pins wall clock reads to the zone named by APP_TIMEZONE (Asia/Seoul when unset).
// Check-in days, meal days and vacation days are compared as YYYYMMDD strings in this zone.
package timezone
