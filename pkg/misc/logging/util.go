package logging

import "unsafe"

// Debug logs to log if it is non-nil.
func Debug(log DebugLogger, args ...interface{}) {
	if !isNilValue(log) {
		log.Debug(args...)
	}
}

// Debugf logs a formatted line to log if it is non-nil.
func Debugf(log DebugLogger, format string, args ...interface{}) {
	if !isNilValue(log) {
		log.Debugf(format, args...)
	}
}

// Info logs to log if it is non-nil.
func Info(log Logger, args ...interface{}) {
	if !isNilValue(log) {
		log.Info(args...)
	}
}

func isNilValue(i interface{}) bool {
	return i == nil || (*[2]uintptr)(unsafe.Pointer(&i))[1] == 0
}
