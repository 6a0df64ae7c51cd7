// Package bytepack implements struct-style binary packing and unpacking
// driven by a compact format string.
//
// A format string describes an ordered sequence of typed binary fields,
// optionally preceded by a byte-order prefix, following the conventions of
// C struct packing: `<i` is one little-endian 32-bit signed integer, `!4H`
// is four big-endian 16-bit unsigned integers, `10s` is a ten byte string
// field. Fields are laid out back to back with no implicit padding; callers
// that need padding insert explicit `x` items.
//
// The three entry points are Pack (and PackInto, for packing into an
// existing slice), Unpack, and IterUnpack, which walks successive
// fixed-size windows of a buffer.
package bytepack

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging enables logging of pack and unpack calls if true is passed
// and disables it if false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.DebugLevel,
	))
}

func init() {
	logging = false
	initializeLogger()
}
