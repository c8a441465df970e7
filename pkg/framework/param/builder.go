package param

import (
	"github.com/justyntemme/paramtoolbox/pkg/convert"
	"github.com/justyntemme/paramtoolbox/pkg/framework/debug"
)

// Builder provides a fluent API for creating parameters
type Builder struct {
	param *Parameter

	min, max     float32
	mid          float32
	hasMid       bool
	kind         convert.Kind
	plainDefault float32
	hasDefault   bool
	hasPrecision bool
}

// New creates a new parameter builder with range 0-1.
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			Precision: convert.DefaultPrecision,
			Flags:     CanAutomate,
		},
		min: 0,
		max: 1,
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the min and max values. max may be below min to invert the
// control direction.
func (b *Builder) Range(min, max float32) *Builder {
	b.min = min
	b.max = max
	return b
}

// Mid skews the mapping so the control's center lands on mid.
func (b *Builder) Mid(mid float32) *Builder {
	b.mid = mid
	b.hasMid = true
	return b
}

// Stepped restricts plain values to integers.
func (b *Builder) Stepped() *Builder {
	b.kind = convert.Stepped
	return b
}

// List makes the parameter select one of count entries.
func (b *Builder) List(count int) *Builder {
	b.min = 0
	b.max = float32(count - 1)
	b.kind = convert.Stepped
	b.hasMid = false
	b.param.Flags |= IsList
	return b
}

// Toggle creates a boolean parameter
func (b *Builder) Toggle() *Builder {
	b.min = 0
	b.max = 1
	b.kind = convert.Stepped
	b.hasMid = false
	return b
}

// Default sets the default value (in plain range, not normalized)
func (b *Builder) Default(value float32) *Builder {
	b.plainDefault = value
	b.hasDefault = true
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Precision sets the fractional digits used by default formatting.
func (b *Builder) Precision(digits int) *Builder {
	b.param.Precision = digits
	b.hasPrecision = true
	return b
}

// Flags sets parameter flags
func (b *Builder) Flags(flags uint32) *Builder {
	b.param.Flags = flags
	return b
}

// ReadOnly marks the parameter as read-only
func (b *Builder) ReadOnly() *Builder {
	b.param.Flags |= IsReadOnly
	b.param.Flags &^= CanAutomate
	return b
}

// Hidden marks the parameter as hidden
func (b *Builder) Hidden() *Builder {
	b.param.Flags |= IsHidden
	return b
}

// Bypass marks this as the bypass parameter
func (b *Builder) Bypass() *Builder {
	b.param.Flags |= IsBypass
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float32) string, parse func(string) (float32, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter. Ranges or midpoints that break the
// converter preconditions are logged, not rejected.
func (b *Builder) Build() *Parameter {
	p := b.param

	var opts []convert.Option
	if b.hasMid {
		debug.WarnIf(convert.CheckMid(b.min, b.max, b.mid), "param %d %q", p.ID, p.Name)
		opts = append(opts, convert.WithMid(b.mid))
	} else {
		debug.WarnIf(convert.CheckRange(b.min, b.max), "param %d %q", p.ID, p.Name)
	}
	p.conv = convert.New(b.min, b.max, b.kind, opts...)

	if b.kind == convert.Stepped && !b.hasPrecision {
		p.Precision = 0
	}

	if b.hasDefault {
		p.DefaultValue = p.conv.ToNormalized(b.plainDefault)
	}
	p.SetValue(p.DefaultValue)

	debug.Debug("param %d %q: range %g..%g kind %s skewed %t", p.ID, p.Name, b.min, b.max, b.kind, b.hasMid)
	return p
}
