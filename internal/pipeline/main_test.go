package pipeline

import (
	"testing"

	"go.uber.org/goleak"

	"almanac/internal/mapping"
)

// TestMain ensures the concurrent resolver leaves no goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type m = mapping.Mapping

// examplePipeline is the seven stage pipeline of the canonical almanac.
func examplePipeline() *Pipeline {
	return New(
		mapping.NewRuleSet("seed-to-soil map", m{50, 98, 2}, m{52, 50, 48}),
		mapping.NewRuleSet("soil-to-fertilizer map", m{0, 15, 37}, m{37, 52, 2}, m{39, 0, 15}),
		mapping.NewRuleSet("fertilizer-to-water map", m{49, 53, 8}, m{0, 11, 42}, m{42, 0, 7}, m{57, 7, 4}),
		mapping.NewRuleSet("water-to-light map", m{88, 18, 7}, m{18, 25, 70}),
		mapping.NewRuleSet("light-to-temperature map", m{45, 77, 23}, m{81, 45, 19}, m{68, 64, 13}),
		mapping.NewRuleSet("temperature-to-humidity map", m{0, 69, 1}, m{1, 0, 69}),
		mapping.NewRuleSet("humidity-to-location map", m{60, 56, 37}, m{56, 93, 4}),
	)
}
