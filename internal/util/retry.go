package util

import "time"

// Retry calls fn until it succeeds, at most 1+retries times, sleeping delay between attempts.
// The error of the last attempt is returned.
func Retry(retries int, delay time.Duration, fn func() error) (err error) {
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 && delay > 0 {
			time.Sleep(delay)
		}
		err = fn()
		if err == nil {
			return nil
		}
	}
	return err
}
