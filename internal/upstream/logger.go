package upstream

import (
	"log"
	"time"
)

// LogRequest logs an API request being made.
func LogRequest(method, path string) {
	log.Printf("[fundspring] %s %s", method, path)
}

// LogResponse logs an API response received.
func LogResponse(method, path string, statusCode int, duration time.Duration) {
	log.Printf("[fundspring] %s %s status=%d duration=%dms",
		method, path, statusCode, duration.Milliseconds())
}

// LogError logs an error from an API operation.
func LogError(operation string, err error) {
	log.Printf("[fundspring] %s error: %v", operation, err)
}
