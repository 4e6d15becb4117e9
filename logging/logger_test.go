package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{}}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "scene loaded",
		Data:    logrus.Fields{"component": "scene", "layers": 3},
	}

	out, err := formatter.Format(entry)
	assert.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "2026-03-14 09:30:00")
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "scene loaded")
	assert.Contains(t, line, "layers=3")
}

func TestTextFormatterSimple(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{
		DisableTimestamp: true,
		DisableComponent: true,
	}}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Now(),
		Level:   logrus.WarnLevel,
		Message: "node skipped",
		Data:    logrus.Fields{"component": "scene"},
	}

	out, err := formatter.Format(entry)
	assert.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "[WARN]")
	assert.Contains(t, line, "node skipped")
	assert.False(t, strings.Contains(line, "scene]"), "component should be suppressed")
	assert.False(t, strings.HasPrefix(line, "20"), "timestamp should be suppressed")
}

func TestNewLoggerSingleton(t *testing.T) {
	a := NewLogger("test-singleton")
	b := NewLogger("test-singleton")
	assert.Same(t, a, b, "NewLogger should return the same entry per component")
}

func TestFormatterWritesNewline(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})
	logger.Info("one")
	logger.Info("two")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}
