package collector

import "go.uber.org/zap"

// BadPrefix marks every soft-failure diagnostic so it can be grepped out
// of the log stream.
const BadPrefix = "[bad] "

// Diagnostics is the sink readers report soft failures to. Reporting is
// observational only; callers continue with default values either way.
type Diagnostics struct {
	logger *zap.Logger
}

func NewDiagnostics(logger *zap.Logger) Diagnostics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Diagnostics{logger: logger}
}

// Named returns a sink whose logger carries the reader name.
func (d Diagnostics) Named(name string) Diagnostics {
	return Diagnostics{logger: d.log().Named(name)}
}

// Path reports an unreadable resource path.
func (d Diagnostics) Path(msg, path string, err error) {
	d.log().Warn(BadPrefix+msg, zap.String("path", path), zap.Error(err))
}

// Command reports a command that could not be run or parsed.
func (d Diagnostics) Command(msg, command string, err error) {
	fields := []zap.Field{zap.String("command", command)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	d.log().Warn(BadPrefix+msg, fields...)
}

func (d Diagnostics) Debug(msg string, fields ...zap.Field) {
	d.log().Debug(msg, fields...)
}

func (d Diagnostics) log() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}
