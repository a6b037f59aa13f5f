package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logrusLevels = map[Level]logrus.Level{
	LevelError: logrus.ErrorLevel,
	LevelInfo:  logrus.InfoLevel,
	LevelDebug: logrus.DebugLevel,
}

// NewLogrus returns a Logger backed by logrus, using a plain text
// formatter without colours or timestamps.
func NewLogrus(w io.Writer, level Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrusLevels[level])
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
