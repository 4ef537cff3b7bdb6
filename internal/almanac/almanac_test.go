package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/interval"
	"almanac/internal/mapping"
	"almanac/internal/pipeline"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := New([]uint64{79, 14, 55, 13},
		mapping.NewRuleSet("seed-to-soil map", mapping.Mapping{Destination: 50, Source: 98, Length: 2}))
	require.NoError(t, err)

	assert.Equal(t, "seeds:", a.SeedLabel)
	assert.Equal(t, []interval.Range{interval.New(79, 14), interval.New(55, 13)}, a.SeedRanges)

	// 79 is outside [98, 100) and passes through unchanged.
	assert.Equal(t, uint64(79), a.Location(79))
}

func TestNew_RangeMinimum(t *testing.T) {
	t.Parallel()

	a, err := New([]uint64{79, 14},
		mapping.NewRuleSet("seed-to-soil map", mapping.Mapping{Destination: 81, Source: 79, Length: 14}))
	require.NoError(t, err)

	got, err := a.ClosestRangeLocation()
	require.NoError(t, err)
	assert.Equal(t, uint64(81), got)
}

func TestAlmanac_NoSeeds(t *testing.T) {
	t.Parallel()

	a, err := New(nil, mapping.NewRuleSet("seed-to-soil map"))
	require.NoError(t, err)

	_, err = a.ClosestSeedLocation()
	require.ErrorIs(t, err, pipeline.ErrNoSeeds)

	_, err = a.ClosestRangeLocation()
	require.ErrorIs(t, err, pipeline.ErrNoRanges)
}

func TestAlmanac_ZeroLengthRangesContributeNothing(t *testing.T) {
	t.Parallel()

	a, err := New([]uint64{1, 0, 40, 2},
		mapping.NewRuleSet("seed-to-soil map", mapping.Mapping{Destination: 100, Source: 40, Length: 1}))
	require.NoError(t, err)

	got, err := a.ClosestRangeLocation()
	require.NoError(t, err)
	assert.Equal(t, uint64(41), got)
}

func TestAlmanac_Validate(t *testing.T) {
	t.Parallel()

	a, err := New([]uint64{1, 0, 7},
		mapping.NewRuleSet("seed-to-soil map",
			mapping.Mapping{Destination: 0, Source: 0, Length: 10},
			mapping.Mapping{Destination: 50, Source: 5, Length: 10},
		),
		mapping.NewRuleSet("water-to-light map"),
	)
	require.NoError(t, err)

	res := a.Validate()
	assert.False(t, res.HasErrors())
	assert.ElementsMatch(t,
		[]string{"overlapping_mappings", "stage_chain_break", "unpaired_seed", "empty_seed_range", "empty_stage"},
		res.Codes())
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MissingField", KindMissingField.String())
	assert.Equal(t, "MalformedInteger", KindMalformedInteger.String())
	assert.Equal(t, "MappingArity", KindMappingArity.String())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
}

func TestParseError_Error(t *testing.T) {
	t.Parallel()

	err := &ParseError{Kind: KindMappingArity, Line: 4, Section: "a-to-b map", Detail: "got 2 fields", Token: "1 2"}
	assert.Equal(t, `unable to parse almanac at line 4 in "a-to-b map": mapping must have exactly three fields: got 2 fields (token "1 2")`, err.Error())

	bare := &ParseError{Kind: KindMissingField}
	assert.Equal(t, "unable to parse almanac: missing field", bare.Error())
	assert.ErrorIs(t, bare, ErrMissingField)
	assert.NotErrorIs(t, bare, ErrMappingArity)
}
