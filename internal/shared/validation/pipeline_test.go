package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameLength = LengthConstraint{
	Min:        10,
	Max:        60,
	MinMessage: "name must contain at least 10 characters",
	MaxMessage: "name must not exceed 60 characters",
}

func namePipeline() *Pipeline {
	return New(Field("name", Trim(), Length(nameLength), Escape()))
}

func TestPipeline_TrimsBeforeLength(t *testing.T) {
	res := namePipeline().Run(map[string]string{"name": "   Short   "})

	require.False(t, res.Valid())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "name", res.Errors[0].Field)
	assert.Equal(t, RuleLength, res.Errors[0].Rule)
	assert.Equal(t, nameLength.MinMessage, res.Errors[0].Message)
	assert.Equal(t, "Short", res.Value("name"))
}

func TestPipeline_ValidValueIsTrimmedAndEscaped(t *testing.T) {
	res := namePipeline().Run(map[string]string{"name": "  Penguin & Sons Ltd  "})

	require.True(t, res.Valid())
	assert.Equal(t, "Penguin &amp; Sons Ltd", res.Value("name"))
}

func TestPipeline_FailedFieldIsStillSanitized(t *testing.T) {
	res := namePipeline().Run(map[string]string{"name": "<b>x</b>"})

	require.False(t, res.Valid())
	assert.Equal(t, "&lt;b&gt;x&lt;&#x2F;b&gt;", res.Value("name"))
}

func TestPipeline_EmptyAndMissingFailMinimum(t *testing.T) {
	for _, input := range []map[string]string{{"name": ""}, {"name": "      "}, {}} {
		res := namePipeline().Run(input)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, nameLength.MinMessage, res.Errors[0].Message)
	}
}

func TestPipeline_MaxLength(t *testing.T) {
	res := namePipeline().Run(map[string]string{"name": strings.Repeat("a", 61)})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, nameLength.MaxMessage, res.Errors[0].Message)

	res = namePipeline().Run(map[string]string{"name": strings.Repeat("a", 60)})
	assert.True(t, res.Valid())
}

func TestPipeline_CountsRunesNotBytes(t *testing.T) {
	res := namePipeline().Run(map[string]string{"name": "Nhà xuất bản"})
	assert.True(t, res.Valid(), res.Errors)
}

func TestPipeline_DoesNotShortCircuitOtherFields(t *testing.T) {
	p := New(
		Field("name", Trim(), Length(nameLength)),
		Field("city", Trim(), Required("city is required")),
	)

	res := p.Run(map[string]string{"name": "tiny", "city": " "})

	require.Len(t, res.Errors, 2)
	assert.Len(t, res.Errors.For("name"), 1)
	assert.Len(t, res.Errors.For("city"), 1)
	assert.Equal(t, "city is required", res.Errors.For("city")[0].Message)
	assert.Contains(t, res.Errors.Error(), "name: ")
}

func TestLengthConstraint_OzzoRule(t *testing.T) {
	rule := nameLength.OzzoRule()

	assert.NoError(t, rule.Validate("Exactly 10"))
	assert.EqualError(t, rule.Validate("too short"), nameLength.MinMessage)
	assert.EqualError(t, rule.Validate(strings.Repeat("b", 61)), nameLength.MaxMessage)
}
