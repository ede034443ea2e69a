package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	stats := ComputeStats(c)
	assert.Equal(t, "pl", stats.Language)
	assert.Equal(t, Stats{Name: "pl", Total: 3, Finished: 1, Unfinished: 1, Vanished: 1}, stats.Summary)
	require.Len(t, stats.Contexts, 1)
	assert.Equal(t, "InfoDialog", stats.Contexts[0].Name)
	assert.Equal(t, 2, stats.Summary.Active())
	assert.InDelta(t, 50.0, stats.Summary.Completion(), 0.001)
}

func TestComputeStatsFixtures(t *testing.T) {
	type scenario struct {
		fixture  string
		expected Stats
		contexts int
	}

	scenarios := []scenario{
		{
			"MEGASyncStrings_id.ts",
			Stats{Name: "id", Total: 575, Finished: 319, Unfinished: 181, Obsolete: 74, Untranslated: 1},
			36,
		},
		{
			"MEGASyncStrings_ka.ts",
			Stats{Name: "ka", Total: 528, Finished: 324, Unfinished: 134, Obsolete: 69, Untranslated: 1},
			29,
		},
	}

	for _, s := range scenarios {
		stats := ComputeStats(loadFixture(t, s.fixture))
		assert.Equal(t, s.expected, stats.Summary, s.fixture)
		assert.Len(t, stats.Contexts, s.contexts)

		total := 0
		for _, ctx := range stats.Contexts {
			total += ctx.Total
		}
		assert.Equal(t, s.expected.Total, total)
	}
}

func TestCompletionOfEmptyCatalog(t *testing.T) {
	assert.Equal(t, 100.0, Stats{}.Completion())
	assert.Equal(t, 100.0, Stats{Total: 2, Obsolete: 2}.Completion())
}
