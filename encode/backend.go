package encode

import (
	"io"

	"github.com/csd-format/go-csd/debug"
	"github.com/csd-format/go-csd/diag"
)

// backend is a write target for the renderer. Writes do not fail; a
// backend which cannot take more output records that in its own state.
type backend interface {
	writeString(s string)
}

type streamBackend struct {
	w   io.Writer
	err error
}

func (b *streamBackend) writeString(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

// Fixed writes into a caller owned buffer of fixed capacity. Output which
// does not fit is counted in Overflow and Status becomes
// diag.WriteOverflow; the buffer is filled to exactly its capacity.
type Fixed struct {
	buf []byte
	n   int

	Overflow int
	Status   diag.Kind
}

func NewFixed(buf []byte) *Fixed {
	return &Fixed{buf: buf}
}

func (f *Fixed) writeString(s string) {
	m := copy(f.buf[f.n:], s)
	f.n += m
	if m == len(s) {
		return
	}
	if f.Status != diag.WriteOverflow && debug.Encode() {
		debug.Logf("encode: fixed buffer of %d bytes full\n", len(f.buf))
	}
	f.Status = diag.WriteOverflow
	f.Overflow += len(s) - m
}

// Bytes returns the written prefix of the buffer.
func (f *Fixed) Bytes() []byte {
	return f.buf[:f.n]
}

func (f *Fixed) Len() int {
	return f.n
}

// Remaining is the unused capacity of the buffer.
func (f *Fixed) Remaining() int {
	return len(f.buf) - f.n
}

// Err returns a write overflow diagnostic if output did not fit.
func (f *Fixed) Err() error {
	if f.Status != diag.WriteOverflow {
		return nil
	}
	return diag.Errorf(diag.WriteOverflow, 0, 0,
		"buffer of %d bytes too small by %d bytes", len(f.buf), f.Overflow)
}

// DefaultCapacity is the initial capacity of a Growable.
const DefaultCapacity = 512

// Growable is an owned buffer which doubles its capacity whenever a write
// would not fit.
type Growable struct {
	buf []byte
	n   int
}

func NewGrowable(capacity int) *Growable {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Growable{buf: make([]byte, capacity)}
}

func (g *Growable) writeString(s string) {
	for g.n+len(s) > len(g.buf) {
		next := make([]byte, 2*len(g.buf))
		copy(next, g.buf[:g.n])
		if debug.Encode() {
			debug.Logf("encode: grow buffer %d -> %d\n", len(g.buf), len(next))
		}
		g.buf = next
	}
	g.n += copy(g.buf[g.n:], s)
}

func (g *Growable) Bytes() []byte {
	return g.buf[:g.n]
}

func (g *Growable) Len() int {
	return g.n
}

func (g *Growable) Cap() int {
	return len(g.buf)
}
