package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.Errorf("bad %d", 1)
	l.Infof("hello %s", "world")
	l.Debugf("hidden")

	assert.Equal("[ERROR]\tbad 1\n[INFO]\thello world\n", buf.String())
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelDebug).Debugf("pc=%04X", 0x1234)

	assert.Equal(t, "[DEBUG]\tpc=1234\n", buf.String())
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Infof("ignored")
	l.Errorf("ignored")
	l.Debugf("ignored")
}

func TestLogrus(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	l := NewLogrus(&buf, LevelInfo)

	l.Infof("stopped after %d steps", 10)
	l.Debugf("hidden")

	assert.Contains(buf.String(), "level=info")
	assert.Contains(buf.String(), "msg=stopped after 10 steps")
	assert.NotContains(buf.String(), "hidden")
}
