package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoice(t *testing.T) {
	options := []ChoiceOption{
		{Name: "Off", Aliases: []string{"disabled", "none"}},
		{Name: "Low", Aliases: []string{"lo", "minimum"}},
		{Name: "Medium", Aliases: []string{"med", "mid", "normal"}},
		{Name: "High", Aliases: []string{"hi", "maximum"}},
	}

	param := Choice(100, "Mode", options).Build()

	assert.Equal(t, int32(3), param.StepCount())
	assert.NotZero(t, param.Flags&IsList)

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			normalized float32
			expected   string
		}{
			{0, "Off"},
			{1.0 / 3, "Low"},
			{2.0 / 3, "Medium"},
			{1, "High"},
			{0.1, "Off"},
			{0.9, "High"},
		}

		for _, test := range tests {
			assert.Equal(t, test.expected, param.FormatValue(test.normalized), "normalized %v", test.normalized)
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input         string
			expectedPlain float32
		}{
			{"Off", 0},
			{"disabled", 0},
			{"Low", 1},
			{"LO", 1},
			{"Medium", 2},
			{" med ", 2},
			{"High", 3},
			{"hi", 3},
		}

		for _, test := range tests {
			normalized, err := param.ParseValue(test.input)
			require.NoError(t, err, test.input)
			assert.Equal(t, test.expectedPlain, param.Denormalize(normalized), test.input)
		}

		_, err := param.ParseValue("ultra")
		assert.Error(t, err)
	})
}

func TestGainParameter(t *testing.T) {
	param := GainParameter(200, "Output Gain").Build()

	assert.InDelta(t, -12, param.Denormalize(0.5), 1e-3)

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			plainValue float32
			expected   string
		}{
			{-80, "-∞ dB"},
			{6, "6.0 dB"},
			{-6, "-6.0 dB"},
			{12, "12.0 dB"},
		}

		for _, test := range tests {
			normalized := param.Normalize(test.plainValue)
			assert.Equal(t, test.expected, param.FormatValue(normalized), "plain %v", test.plainValue)
		}
	})

	t.Run("Parser", func(t *testing.T) {
		normalized, err := param.ParseValue("-inf dB")
		require.NoError(t, err)
		assert.Equal(t, float32(-80), param.Denormalize(normalized))

		normalized, err = param.ParseValue("-6 dB")
		require.NoError(t, err)
		assert.InDelta(t, -6, param.Denormalize(normalized), 1e-3)
	})
}

func TestMixParameter(t *testing.T) {
	param := MixParameter(300, "Dry/Wet Mix").Build()

	assert.Equal(t, float32(0), param.Min())
	assert.Equal(t, float32(100), param.Max())
	assert.InDelta(t, 1.0, param.DefaultValue, 1e-6)
	assert.Equal(t, "50%", param.FormatValue(0.5))
}

func TestFrequencyParameter(t *testing.T) {
	param := FrequencyParameter(400, "Cutoff", 20, 20000, 1000, 1000).Build()

	assert.InDelta(t, 0.5, param.DefaultValue, 1e-5)
	assert.Equal(t, "1.00 kHz", param.FormatValue(param.Normalize(1000)))
	assert.Equal(t, "440.0 Hz", param.FormatValue(param.Normalize(440)))

	normalized, err := param.ParseValue("2.5 kHz")
	require.NoError(t, err)
	assert.InDelta(t, 2500, param.Denormalize(normalized), 0.1)
}

func TestTimeParameter(t *testing.T) {
	param := TimeParameter(500, "Attack", 0.1, 5000, 10).Build()

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			plainValue float32
			expected   string
		}{
			{10, "10.0 ms"},
			{100, "100.0 ms"},
			{2500, "2.50 s"},
		}

		for _, test := range tests {
			normalized := param.Normalize(test.plainValue)
			assert.Equal(t, test.expected, param.FormatValue(normalized), "plain %v", test.plainValue)
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input         string
			expectedPlain float32
		}{
			{"10 ms", 10},
			{"10ms", 10},
			{"1 s", 1000},
			{"1s", 1000},
			{"2.5 s", 2500},
			{"500 us", 0.5},
		}

		for _, test := range tests {
			normalized, err := param.ParseValue(test.input)
			require.NoError(t, err, test.input)
			assert.InDelta(t, test.expectedPlain, param.Denormalize(normalized), 0.1, test.input)
		}
	})
}

func TestRateParameter(t *testing.T) {
	param := RateParameter(550, "Rate", 0.01, 30, 1, 1).Build()

	assert.InDelta(t, 1, param.Denormalize(0.5), 1e-5)
	assert.Equal(t, "0.010 Hz", param.FormatValue(0))
	assert.Equal(t, "30.00 Hz", param.FormatValue(1))
}

func TestPanParameter(t *testing.T) {
	param := PanParameter(700, "Pan").Build()

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			plainValue float32
			expected   string
		}{
			{0, "Center"},
			{-50, "50% L"},
			{50, "50% R"},
			{-100, "100% L"},
			{100, "100% R"},
		}

		for _, test := range tests {
			normalized := param.Normalize(test.plainValue)
			assert.Equal(t, test.expected, param.FormatValue(normalized), "plain %v", test.plainValue)
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input         string
			expectedPlain float32
		}{
			{"center", 0},
			{"c", 0},
			{"50 l", -50},
			{"50% left", -50},
			{"50 r", 50},
			{"50% right", 50},
			{"75", 75},
		}

		for _, test := range tests {
			normalized, err := param.ParseValue(test.input)
			require.NoError(t, err, test.input)
			assert.InDelta(t, test.expectedPlain, param.Denormalize(normalized), 0.1, test.input)
		}
	})
}

func TestBypassParameter(t *testing.T) {
	param := BypassParameter(800, "Bypass").Build()

	assert.NotZero(t, param.Flags&IsBypass)
	assert.Equal(t, "Active", param.FormatValue(0))
	assert.Equal(t, "Bypassed", param.FormatValue(1))

	normalized, err := param.ParseValue("on")
	require.NoError(t, err)
	assert.Equal(t, float32(1), normalized)
}
