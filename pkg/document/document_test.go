package document

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureIDs_GeneratesUUIDWhenMissing(t *testing.T) {
	docs := []Document{
		{"value": 5},
		{"value": 10},
	}

	err := EnsureIDs(docs, true)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, doc := range docs {
		id := doc.ID()
		require.NotEmpty(t, id)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
		assert.False(t, seen[id], "ids must be unique")
		seen[id] = true
	}
}

func TestEnsureIDs_FailsWhenMissingAndDisabled(t *testing.T) {
	docs := []Document{
		{IDField: "a", "value": 1},
		{"value": 2},
	}

	err := EnsureIDs(docs, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestEnsureIDs_ConvertsNumericIDs(t *testing.T) {
	docs := []Document{
		{IDField: float64(10), "value": 1},
		{IDField: 332, "value": 2},
		{IDField: "keep-me", "value": 3},
	}

	require.NoError(t, EnsureIDs(docs, false))
	assert.Equal(t, "10", docs[0].ID())
	assert.Equal(t, "332", docs[1].ID())
	assert.Equal(t, "keep-me", docs[2].ID())
}

func TestApproxSizeBytes(t *testing.T) {
	size, probeErr := ApproxSizeBytes(Document{IDField: "1", "value": 5})
	require.NoError(t, probeErr)
	assert.Greater(t, size, 0)

	bigger, probeErr := ApproxSizeBytes(Document{
		IDField: "2",
		"text":  "a considerably longer field value than the small document above",
	})
	require.NoError(t, probeErr)
	assert.Greater(t, bigger, size)
}

func TestIDs_PreservesOrder(t *testing.T) {
	docs := []Document{
		{IDField: "c"},
		{IDField: "a"},
		{IDField: "b"},
	}
	assert.Equal(t, []string{"c", "a", "b"}, IDs(docs))
}
