package port

// Logger is the common structured logging interface passed to services
// that do not take a zap logger directly.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
