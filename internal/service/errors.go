package service

import "errors"

var (
	ErrInvalid        = errors.New("invalid")
	ErrFeedFetch      = errors.New("feed fetch failed")
	ErrAlreadyRunning = errors.New("run already in progress")
	// ErrNoSummaries means candidates existed but every summarization failed;
	// the run aborts without touching the output file.
	ErrNoSummaries = errors.New("no items could be summarized")
)
