// Package bridge exposes converters to a host through opaque handles.
//
// It is the Go side of the handle-based boundary a C export layer calls
// into: every construct call returns a Handle that must be released with
// exactly one Delete. The table does not guard against use after Delete;
// calls on an unknown handle return zero values.
package bridge

import (
	"sync"

	"github.com/justyntemme/paramtoolbox/pkg/convert"
	"github.com/justyntemme/paramtoolbox/pkg/framework/debug"
)

// Handle identifies a converter held by a Table. The zero Handle is never
// issued.
type Handle uintptr

// Table maps handles to converters.
type Table struct {
	mu         sync.RWMutex
	converters map[Handle]convert.Converter
	nextID     Handle
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		converters: make(map[Handle]convert.Converter),
		nextID:     1,
	}
}

var defaultTable = NewTable()

// Default returns the table used by the package-level functions.
func Default() *Table {
	return defaultTable
}

// register stores c and returns its handle
func (t *Table) register(c convert.Converter) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := t.nextID
	t.nextID++
	t.converters[h] = c
	return h
}

func (t *Table) get(h Handle) (convert.Converter, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.converters[h]
	return c, ok
}

// NewLinear registers an unskewed converter.
func (t *Table) NewLinear(min, max float32, kind convert.Kind) Handle {
	debug.WarnIf(convert.CheckRange(min, max), "bridge: linear converter")
	return t.register(convert.NewLinear(min, max, kind))
}

// NewLog registers a continuous converter skewed through mid.
func (t *Table) NewLog(min, max, mid float32) Handle {
	debug.WarnIf(convert.CheckMid(min, max, mid), "bridge: log converter")
	return t.register(convert.NewLog(min, max, mid))
}

// NewList registers a stepped converter over itemCount entries.
func (t *Table) NewList(itemCount int32) Handle {
	if itemCount < 2 {
		debug.Warn("bridge: list converter with %d items has an empty range", itemCount)
	}
	return t.register(convert.NewList(int(itemCount)))
}

// Delete releases h. Deleting an unknown handle only logs a warning.
func (t *Table) Delete(h Handle) {
	t.mu.Lock()
	_, ok := t.converters[h]
	delete(t.converters, h)
	t.mu.Unlock()

	if !ok {
		debug.Warn("bridge: delete of unknown handle %d", h)
	}
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.converters)
}

// ToPhysical converts a normalized value with the converter behind h.
func (t *Table) ToPhysical(h Handle, normalized float32) float32 {
	c, ok := t.get(h)
	if !ok {
		return 0
	}
	return c.ToPhysical(normalized)
}

// ToNormalized converts a physical value with the converter behind h.
func (t *Table) ToNormalized(h Handle, physical float32) float32 {
	c, ok := t.get(h)
	if !ok {
		return 0
	}
	return c.ToNormalized(physical)
}

// ToDisplay formats physical and hands the string to sink. A negative
// precision selects convert.DefaultPrecision. sink is not called for an
// unknown handle.
func (t *Table) ToDisplay(h Handle, physical float32, precision int32, sink func(string)) {
	c, ok := t.get(h)
	if !ok || sink == nil {
		return
	}
	sink(c.ToDisplay(physical, int(precision)))
}

// FromDisplay parses s with the converter behind h. A nil s is treated as
// a failed parse and yields the converter's min.
func (t *Table) FromDisplay(h Handle, s *string) float32 {
	c, ok := t.get(h)
	if !ok {
		return 0
	}
	if s == nil {
		return c.Min()
	}
	return c.FromDisplay(*s)
}

// NumSteps returns the step count of the converter behind h.
func (t *Table) NumSteps(h Handle) int32 {
	c, ok := t.get(h)
	if !ok {
		return 0
	}
	return int32(c.NumSteps())
}

// NewLinear registers an unskewed converter in the default table.
func NewLinear(min, max float32, kind convert.Kind) Handle {
	return defaultTable.NewLinear(min, max, kind)
}

// NewLog registers a skewed converter in the default table.
func NewLog(min, max, mid float32) Handle {
	return defaultTable.NewLog(min, max, mid)
}

// NewList registers a list converter in the default table.
func NewList(itemCount int32) Handle {
	return defaultTable.NewList(itemCount)
}

// Delete releases h from the default table.
func Delete(h Handle) {
	defaultTable.Delete(h)
}

// ToPhysical converts with a converter in the default table.
func ToPhysical(h Handle, normalized float32) float32 {
	return defaultTable.ToPhysical(h, normalized)
}

// ToNormalized converts with a converter in the default table.
func ToNormalized(h Handle, physical float32) float32 {
	return defaultTable.ToNormalized(h, physical)
}

// ToDisplay formats with a converter in the default table.
func ToDisplay(h Handle, physical float32, precision int32, sink func(string)) {
	defaultTable.ToDisplay(h, physical, precision, sink)
}

// FromDisplay parses with a converter in the default table.
func FromDisplay(h Handle, s *string) float32 {
	return defaultTable.FromDisplay(h, s)
}

// NumSteps returns the step count of a converter in the default table.
func NumSteps(h Handle) int32 {
	return defaultTable.NumSteps(h)
}
