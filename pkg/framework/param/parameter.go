// Package param provides plugin parameters backed by a convert.Converter.
package param

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/justyntemme/paramtoolbox/pkg/convert"
)

// Parameter represents a plugin parameter. The conversion between normalized
// and plain values is fixed at Build time; only the current value changes.
type Parameter struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	DefaultValue float32 // normalized
	Precision    int     // fractional digits for default formatting
	Flags        uint32
	UnitID       int32

	conv convert.Converter

	// float32 bits, for lock-free access in audio thread
	value atomic.Uint32

	formatFunc func(float32) string
	parseFunc  func(string) (float32, error)
}

// Flags for parameters
const (
	CanAutomate     uint32 = 1 << 0
	IsReadOnly      uint32 = 1 << 1
	IsWrapAround    uint32 = 1 << 2
	IsList          uint32 = 1 << 3
	IsHidden        uint32 = 1 << 4
	IsProgramChange uint32 = 1 << 15
	IsBypass        uint32 = 1 << 16
)

// Converter returns the parameter's converter.
func (p *Parameter) Converter() convert.Converter {
	return p.conv
}

// Min returns the plain value at normalized 0.
func (p *Parameter) Min() float32 { return p.conv.Min() }

// Max returns the plain value at normalized 1.
func (p *Parameter) Max() float32 { return p.conv.Max() }

// StepCount returns 0 for continuous parameters and max-min for stepped ones.
func (p *Parameter) StepCount() int32 {
	return int32(p.conv.NumSteps())
}

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float32 {
	return math.Float32frombits(p.value.Load())
}

// SetValue sets the normalized value, clamped to 0-1
func (p *Parameter) SetValue(value float32) {
	if value < convert.NormMin {
		value = convert.NormMin
	} else if value > convert.NormMax {
		value = convert.NormMax
	}
	p.value.Store(math.Float32bits(value))
}

// GetPlainValue returns the current value in plain units.
func (p *Parameter) GetPlainValue() float32 {
	return p.conv.ToPhysical(p.GetValue())
}

// SetPlainValue sets the current value from plain units.
func (p *Parameter) SetPlainValue(plain float32) {
	p.SetValue(p.conv.ToNormalized(plain))
}

// Normalize converts a plain value to normalized.
func (p *Parameter) Normalize(plain float32) float32 {
	return p.conv.ToNormalized(plain)
}

// Denormalize converts a normalized value to plain.
func (p *Parameter) Denormalize(normalized float32) float32 {
	return p.conv.ToPhysical(normalized)
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float32) string, parse func(string) (float32, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// FormatValue returns the display string for a normalized value.
func (p *Parameter) FormatValue(normalized float32) string {
	plain := p.Denormalize(normalized)
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	return p.conv.ToDisplay(plain, p.Precision)
}

// ParseValue parses a display string to a normalized value. Without a custom
// parser, text that is not a number maps to the parameter minimum.
func (p *Parameter) ParseValue(str string) (float32, error) {
	if p.parseFunc == nil {
		return p.Normalize(p.conv.FromDisplay(str)), nil
	}
	plain, err := p.parseFunc(str)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	return p.Normalize(plain), nil
}
