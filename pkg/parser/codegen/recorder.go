package codegen

import (
	"strings"

	"github.com/charmbracelet/log"
)

// StartRecording redirects emission into an empty recording buffer
func (c *Codegen) StartRecording() {
	c.recording = true
	c.recorded.Reset()
}

// StopRecording restores normal emission and returns the captured instruction text, one instruction per line
func (c *Codegen) StopRecording() string {
	c.recording = false
	block := c.recorded.String()
	c.recorded.Reset()

	log.Debug("recorded block", "bytes", len(block))
	return block
}

// Recording reports whether emission is being captured
func (c *Codegen) Recording() bool {
	return c.recording
}

// record appends one instruction line to the buffer. Exceeding Limits.MaxRecording aborts the compilation.
func (c *Codegen) record(text string) {
	if c.recorded.Len()+len(text)+1 > c.limits.MaxRecording {
		c.fatal(ErrRecordingLimit, c.limits.MaxRecording)
	}

	c.recorded.WriteString(text)
	c.recorded.WriteByte('\n')
}

// EmitBlock re-emits every non-empty line of a recorded block, so each copy receives fresh indices
func (c *Codegen) EmitBlock(block string) {
	for line := range strings.SplitSeq(block, "\n") {
		if line == "" {
			continue
		}

		c.Emit("%s", line)
	}
}
