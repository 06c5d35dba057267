package service

import "time"

// SetClock pins the service clock so slot assignment can be tested.
func SetClock(svc Meal, now func() time.Time) {
	svc.(*serviceImpl).now = now
}
