package repositories

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSetOrdersColumns(t *testing.T) {
	clause, args := buildSet(map[string]interface{}{
		"value": 50000.0,
		"stage": "contacted",
	}, 2)

	assert.Equal(t, "stage=$2, value=$3", clause)
	require.Len(t, args, 2)
	assert.Equal(t, "contacted", args[0])
	assert.Equal(t, 50000.0, args[1])
}

func TestBuildSetWrapsStringSlices(t *testing.T) {
	clause, args := buildSet(map[string]interface{}{
		"media_assets": []string{"Tokenized"},
	}, 1)

	assert.Equal(t, "media_assets=$1", clause)
	require.Len(t, args, 1)
	// pq.Array wraps the slice for the text[] column
	assert.Implements(t, (*driver.Valuer)(nil), args[0])
}

func TestBuildSetEmpty(t *testing.T) {
	clause, args := buildSet(map[string]interface{}{}, 1)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}
