package postgres_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Movements are append-only history and must survive the deletion of their
// item, so inventory_movements may not carry a foreign key that would cascade
// or block the delete. The memory driver behaves that way already; this pins
// the schema to the same contract.
func TestMovementsTableHasNoItemForeignKey(t *testing.T) {
	schema, err := os.ReadFile("migrations/001_schema.sql")
	require.NoError(t, err)

	table := tableDefinition(t, string(schema), "inventory_movements")
	assert.NotContains(t, table, "REFERENCES")
	assert.Contains(t, table, "item_id    UUID NOT NULL")
}

func tableDefinition(t *testing.T, schema, name string) string {
	t.Helper()
	start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+name)
	require.GreaterOrEqual(t, start, 0, "table %s not found", name)
	end := strings.Index(schema[start:], ");")
	require.GreaterOrEqual(t, end, 0)
	return schema[start : start+end]
}
