package codegen

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// JumpList holds the indices of jump instructions still waiting for a target. nil is the empty list.
type JumpList []int

// MakeList creates a list holding a single instruction index
func MakeList(idx int) JumpList {
	return JumpList{idx}
}

// Merge returns a new list with the indices of a followed by those of b.
// Neither input is modified, and an index present in both appears once, so
// merging a list with itself never patches a slot twice.
func Merge(a, b JumpList) JumpList {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}

	merged := make(JumpList, 0, len(a)+len(b))
	seen := make(map[int]struct{}, len(a)+len(b))
	for _, l := range [2]JumpList{a, b} {
		for _, idx := range l {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			merged = append(merged, idx)
		}
	}

	return merged
}

// Backpatch completes every listed jump by appending the target label to its text.
// Indices that name no stored instruction (such as NoIndex from a recorded emission) are skipped.
// A jump that was already completed gets a second label; the list is not checked for that.
func (c *Codegen) Backpatch(list JumpList, target int) {
	label := strconv.Itoa(target)
	for _, idx := range list {
		ins := c.instruction(idx)
		if ins == nil {
			log.Debug("backpatch skipped missing instruction", "index", idx, "target", target)
			continue
		}

		ins.Text += " " + label
		log.Debug("backpatch", "index", idx, "text", ins.Text)
	}
}
