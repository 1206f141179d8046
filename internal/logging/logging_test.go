package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetVerbose(true)
	Debug("shown", "session", "abc")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "session=abc")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	With("component", "export").Warn("slow")
	assert.Contains(t, buf.String(), "component=export")
	assert.Contains(t, buf.String(), "level=WARN")
}
