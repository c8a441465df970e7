package param

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/paramtoolbox/pkg/convert"
	"github.com/justyntemme/paramtoolbox/pkg/framework/debug"
)

func TestParameterValue(t *testing.T) {
	p := New(1, "Level").Range(0, 100).Default(25).Build()

	assert.InDelta(t, 0.25, p.DefaultValue, 1e-6)
	assert.InDelta(t, 0.25, p.GetValue(), 1e-6)
	assert.InDelta(t, 25, p.GetPlainValue(), 1e-4)

	p.SetValue(0.75)
	assert.Equal(t, float32(0.75), p.GetValue())
	assert.Equal(t, float32(75), p.GetPlainValue())

	p.SetValue(1.5)
	assert.Equal(t, float32(1), p.GetValue())
	p.SetValue(-0.5)
	assert.Equal(t, float32(0), p.GetValue())

	p.SetPlainValue(40)
	assert.InDelta(t, 0.4, p.GetValue(), 1e-6)
	p.SetPlainValue(400)
	assert.Equal(t, float32(1), p.GetValue())
}

func TestParameterSkewed(t *testing.T) {
	p := New(2, "Cutoff").Range(20, 20000).Mid(1000).Build()

	assert.InDelta(t, 1000, p.Denormalize(0.5), 1e-2)
	assert.InDelta(t, 0.5, p.Normalize(1000), 1e-6)
	assert.Equal(t, float32(20), p.Denormalize(0))
	assert.Equal(t, float32(20000), p.Denormalize(1))
	assert.True(t, p.Converter().Curve().Skewed())
}

func TestParameterInverted(t *testing.T) {
	p := New(3, "Depth").Range(10, 0).Build()

	assert.Equal(t, float32(10), p.Min())
	assert.Equal(t, float32(0), p.Max())
	assert.Equal(t, float32(10), p.Denormalize(0))
	assert.Equal(t, float32(0), p.Denormalize(1))
	assert.InDelta(t, 0.3, p.Normalize(7), 1e-6)
}

func TestParameterStepped(t *testing.T) {
	p := New(4, "Voices").Range(1, 8).Stepped().Default(4).Build()

	assert.Equal(t, int32(7), p.StepCount())
	assert.Equal(t, float32(4), p.GetPlainValue())
	assert.Equal(t, "4", p.FormatValue(p.GetValue()))

	p.SetPlainValue(5.4)
	assert.Equal(t, float32(5), p.GetPlainValue())
}

func TestParameterDefaultFormatting(t *testing.T) {
	p := New(5, "Amount").Range(0, 100).Build()

	assert.Equal(t, "50.00", p.FormatValue(0.5))

	p3 := New(6, "Fine").Range(0, 1).Precision(3).Build()
	assert.Equal(t, "0.250", p3.FormatValue(0.25))

	// an explicit precision wins over the stepped default
	ps := New(7, "Steps").Range(0, 10).Stepped().Precision(1).Build()
	assert.Equal(t, "5.0", ps.FormatValue(0.5))
}

func TestParameterDefaultParsing(t *testing.T) {
	p := New(8, "Amount").Range(0, 100).Build()

	n, err := p.ParseValue("50")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n, 1e-6)

	// text that is not a number falls back to min
	n, err = p.ParseValue("lots")
	require.NoError(t, err)
	assert.Equal(t, float32(0), n)
}

func TestParameterCustomParserError(t *testing.T) {
	p := New(9, "Mode").Formatter(OnOffFormatter, OnOffParser).Build()

	_, err := p.ParseValue("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parameter "Mode"`)
}

func TestParameterFlags(t *testing.T) {
	p := New(10, "Meter").ReadOnly().Hidden().Build()
	assert.NotZero(t, p.Flags&IsReadOnly)
	assert.NotZero(t, p.Flags&IsHidden)
	assert.Zero(t, p.Flags&CanAutomate)

	l := New(11, "Shape").List(4).Build()
	assert.NotZero(t, l.Flags&IsList)
	assert.Equal(t, int32(3), l.StepCount())

	tg := New(12, "Enable").Toggle().Build()
	assert.Equal(t, int32(1), tg.StepCount())
	assert.Equal(t, convert.Stepped, tg.Converter().Kind())

	f := New(13, "Custom").Flags(IsWrapAround).ShortName("Cst").Unit("x").Build()
	assert.Equal(t, IsWrapAround, f.Flags)
	assert.Equal(t, "Cst", f.ShortName)
	assert.Equal(t, "x", f.Unit)
}

func TestBuildWarnsOnBadRange(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(os.Stderr) })

	New(14, "Broken").Range(3, 3).Build()
	assert.Contains(t, buf.String(), `param 14 "Broken"`)

	buf.Reset()
	New(15, "Edge").Range(0, 100).Mid(100).Build()
	assert.Contains(t, buf.String(), `param 15 "Edge"`)

	buf.Reset()
	New(16, "Fine").Range(0, 100).Mid(30).Build()
	assert.NotContains(t, buf.String(), "WARN")
}

func TestParameterConcurrentValue(t *testing.T) {
	p := New(17, "Gain").Range(-96, 6).Build()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				p.SetValue(float32(j%2) * 0.5)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				v := p.GetValue()
				if v != 0 && v != 0.5 {
					t.Errorf("torn value %v", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}
