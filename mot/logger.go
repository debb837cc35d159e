package mot

// Logger defines methods for structured logging.
//
// Compatible with zap.SugaredLogger and log/slog based adapters.
// All methods accept key-value pairs for structured fields.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// NopLogger discards all log messages. It is the tracker's default logger.
type NopLogger struct{}

var _ Logger = (*NopLogger)(nil)

// NewNopLogger creates a logger that performs no operations
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(_ string, _ ...any) {}
func (n *NopLogger) Info(_ string, _ ...any)  {}
func (n *NopLogger) Warn(_ string, _ ...any)  {}
func (n *NopLogger) Error(_ string, _ ...any) {}
