package codegen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NoIndex is returned by Emit while recording; it never names a stored instruction
const NoIndex = 0

// Emit formats an instruction and appends it to the program block, returning its index.
// While recording, the text goes to the recording buffer instead and NoIndex is returned.
// Exceeding Limits.MaxInstructions aborts the compilation (see FatalError).
func (c *Codegen) Emit(format string, args ...any) int {
	text := fmt.Sprintf(format, args...)

	if c.recording {
		c.record(text)
		return NoIndex
	}

	if c.finalized {
		log.Error("Emit after the listing was finalized", "text", text)
		return NoIndex
	}

	if c.next > c.limits.MaxInstructions {
		c.fatal(ErrInstructionLimit, c.limits.MaxInstructions)
	}

	idx := c.next
	c.pb = append(c.pb, Instruction{Index: idx, Text: text})
	c.next++

	log.Debug("emit", "index", idx, "text", text)
	return idx
}

// CurrentIndex returns the index the next emitted instruction will receive
func (c *Codegen) CurrentIndex() int {
	return c.next
}

// instruction returns the stored instruction for an index, or nil if there is none
func (c *Codegen) instruction(idx int) *Instruction {
	if idx < 1 || idx > len(c.pb) {
		return nil
	}

	return &c.pb[idx-1]
}

// Program returns a copy of the instructions emitted so far, in index order
func (c *Codegen) Program() []Instruction {
	return append([]Instruction(nil), c.pb...)
}

// Finalize writes the listing, one "<index>: <text>" line per instruction, and releases the store.
// Calls after the first write nothing.
func (c *Codegen) Finalize(w io.Writer) error {
	if c.finalized {
		return nil
	}

	bw := bufio.NewWriter(w)
	for _, ins := range c.pb {
		if _, err := fmt.Fprintln(bw, ins); err != nil {
			return fmt.Errorf("writing instruction %d: %w", ins.Index, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}

	log.Debug("finalized listing", "instructions", len(c.pb))
	c.pb = nil
	c.finalized = true
	return nil
}
