// SPDX-License-Identifier: Unlicense OR MIT

package ops

// Reader walks an ops list in execution order: recordings are skipped
// where they were made and expanded where they are called.
type Reader struct {
	pc    int
	end   int
	stack []frame
	ops   *Ops
}

type frame struct {
	ops    *Ops
	retPC  int
	retEnd int
}

// Reset start reading from the op list.
func (r *Reader) Reset(ops *Ops) {
	r.stack = r.stack[:0]
	r.pc = 0
	r.ops = ops
	r.end = -1
}

// Decode returns the next op, or false when the list is exhausted.
func (r *Reader) Decode() (Op, bool) {
	if r.ops == nil {
		return Op{}, false
	}
	for {
		data := r.ops.data
		end := r.end
		if end < 0 {
			end = len(data)
		}
		if r.pc >= end {
			n := len(r.stack)
			if n == 0 {
				return Op{}, false
			}
			f := r.stack[n-1]
			r.stack = r.stack[:n-1]
			r.ops, r.pc, r.end = f.ops, f.retPC, f.retEnd
			continue
		}
		op := data[r.pc]
		switch op.Type {
		case TypeMacro:
			// Skip the recording; it runs only through a call.
			r.pc = op.End
			continue
		case TypeCall:
			r.stack = append(r.stack, frame{ops: r.ops, retPC: r.pc + 1, retEnd: r.end})
			r.ops = op.Ops
			// Step over the macro header.
			r.pc = op.Start + 1
			r.end = op.End
			continue
		}
		r.pc++
		return op, true
	}
}
