package service

import "time"

// MetricsRecorder receives operational measurements from delivery, usecase and infrastructure code
type MetricsRecorder interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	RecordBookingEvent(eventType string)
	RecordStreamStatus(state string)
	RecordBreakerState(name string, state int)
	RecordStreamEvent(eventType, outcome string)
}
