package param

import (
	"fmt"
	"strings"

	"github.com/justyntemme/paramtoolbox/pkg/convert"
)

// ChoiceOption represents a single entry in a list parameter
type ChoiceOption struct {
	Name    string
	Aliases []string
}

// Choice creates a list parameter whose plain value is the option index
func Choice(id uint32, name string, options []ChoiceOption) *Builder {
	formatter := func(value float32) string {
		index := int(value)
		if index >= 0 && index < len(options) {
			return options[index].Name
		}
		return "Unknown"
	}

	parser := func(str string) (float32, error) {
		str = strings.TrimSpace(str)
		for i, opt := range options {
			if strings.EqualFold(str, opt.Name) {
				return float32(i), nil
			}
			for _, alias := range opt.Aliases {
				if strings.EqualFold(str, alias) {
					return float32(i), nil
				}
			}
		}
		return 0, fmt.Errorf("unknown option: %s", str)
	}

	return New(id, name).
		List(len(options)).
		Formatter(formatter, parser)
}

// GainParameter creates a gain parameter from -∞ (-80 dB) to +12 dB with
// -12 dB at the control's center.
func GainParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(DecibelFloor, 12).
		Mid(-12).
		Default(0).
		Unit("dB").
		Formatter(DecibelFormatter, DecibelParser)
}

// MixParameter creates a standard mix/blend parameter (0-100%)
func MixParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(0, 100).
		Default(100).
		Unit("%").
		Formatter(PercentFormatter, PercentParser)
}

// FrequencyParameter creates a frequency parameter whose center sits at mid
func FrequencyParameter(id uint32, name string, min, max, mid, defaultVal float32) *Builder {
	return New(id, name).
		Range(min, max).
		Mid(mid).
		Default(defaultVal).
		Unit("Hz").
		Formatter(FrequencyFormatter, FrequencyParser)
}

// TimeParameter creates a time parameter in milliseconds
func TimeParameter(id uint32, name string, minMs, maxMs, defaultMs float32) *Builder {
	return New(id, name).
		Range(minMs, maxMs).
		Default(defaultMs).
		Unit("ms").
		Formatter(TimeFormatter, TimeParser)
}

// RateParameter creates an LFO rate parameter in Hz skewed towards slow rates
func RateParameter(id uint32, name string, minHz, maxHz, midHz, defaultHz float32) *Builder {
	return New(id, name).
		Range(minHz, maxHz).
		Mid(midHz).
		Default(defaultHz).
		Unit("Hz").
		Formatter(func(v float32) string {
			if v < 1 {
				return convert.FormatValue(v, 3) + " Hz"
			}
			return convert.FormatValue(v, 2) + " Hz"
		}, FrequencyParser)
}

// PanParameter creates a stereo pan parameter
func PanParameter(id uint32, name string) *Builder {
	return New(id, name).
		Range(-100, 100).
		Default(0).
		Formatter(func(v float32) string {
			switch {
			case v > -0.5 && v < 0.5:
				return "Center"
			case v < 0:
				return convert.FormatValue(-v, 0) + "% L"
			default:
				return convert.FormatValue(v, 0) + "% R"
			}
		}, func(s string) (float32, error) {
			s = strings.TrimSpace(strings.ToLower(s))
			if s == "center" || s == "c" {
				return 0, nil
			}

			sign := float32(1)
			for _, suffix := range []string{"left", "l"} {
				if rest, ok := trimSuffixFold(s, suffix); ok {
					s, sign = rest, -1
					break
				}
			}
			if sign > 0 {
				for _, suffix := range []string{"right", "r"} {
					if rest, ok := trimSuffixFold(s, suffix); ok {
						s = rest
						break
					}
				}
			}

			val, err := parseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"))
			if err != nil {
				return 0, err
			}
			return sign * val, nil
		})
}

// BypassParameter creates a bypass on/off switch
func BypassParameter(id uint32, name string) *Builder {
	return Choice(id, name, []ChoiceOption{
		{Name: "Active", Aliases: []string{"off"}},
		{Name: "Bypassed", Aliases: []string{"on"}},
	}).Bypass()
}
