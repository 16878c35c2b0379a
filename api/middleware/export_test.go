package middleware

import "time"

// SetPrintRequestFunc -
func (rlm *responseLoggerMiddleware) SetPrintRequestFunc(handler func(title string, path string, duration time.Duration, status int, request string, response string)) {
	rlm.printRequestFunc = handler
}
