package logging

// Logger is the minimal logging surface services depend on.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Error(args ...interface{})
}

// DebugLogger adds debug output to Logger.
type DebugLogger interface {
	Logger
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
}
