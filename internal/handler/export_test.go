package handler

// Test-only exports.

var (
	WriteServiceError = writeServiceError
	Error             = writeError
)
