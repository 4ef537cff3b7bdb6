package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Clean(t *testing.T) {
	t.Parallel()

	res := Validate(seedToSoil())
	assert.False(t, res.HasErrors())
	assert.Empty(t, res.All())
}

func TestValidate_EmptyStage(t *testing.T) {
	t.Parallel()

	res := Validate(NewRuleSet("water-to-light map"))
	assert.Equal(t, []string{"empty_stage"}, res.Codes())
}

func TestValidate_Overlap(t *testing.T) {
	t.Parallel()

	rs := NewRuleSet("seed-to-soil map",
		Mapping{Destination: 100, Source: 0, Length: 10},
		Mapping{Destination: 0, Source: 20, Length: 5},
		Mapping{Destination: 500, Source: 5, Length: 10},
	)

	res := Validate(rs)
	require.Len(t, res.Warnings, 1)

	w := res.Warnings[0]
	assert.Equal(t, "overlapping_mappings", w.Code)
	assert.Equal(t, "seed-to-soil map", w.Stage)
	assert.Equal(t, "500 5 10", w.Mapping)
	assert.Contains(t, w.Message, "[5, 10)")
	assert.Contains(t, w.Message, `"100 0 10"`)
}

func TestValidate_EmptyMapping(t *testing.T) {
	t.Parallel()

	rs := NewRuleSet("seed-to-soil map",
		Mapping{Destination: 100, Source: 0, Length: 10},
		Mapping{Destination: 1, Source: 3, Length: 0},
	)

	res := Validate(rs)
	assert.Equal(t, []string{"empty_mapping"}, res.Codes())
	assert.False(t, res.HasErrors())
}
