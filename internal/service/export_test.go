package service

import "time"

// Test hooks. Only compiled with the test binary.

// SetFetchServiceNow overrides the clock used for the window cutoff.
func SetFetchServiceNow(svc FetchService, now func() time.Time) {
	svc.(*fetchService).now = now
}

// SetSummarizeServiceRunning flips the running flag.
func SetSummarizeServiceRunning(svc SummarizeService, running bool) {
	s := svc.(*summarizeService)
	s.mu.Lock()
	s.isRunning = running
	s.mu.Unlock()
}
