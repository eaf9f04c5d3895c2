package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCoversAllTables(t *testing.T) {
	require.NotEmpty(t, schemaSQL)

	// Every table the repositories read or write must be created here.
	tables := []string{
		"plans",
		"subscriptions",
		"products",
		"suppliers",
		"customers",
		"purchase_orders",
		"purchase_order_items",
		"sales",
		"sale_items",
		"inventory_counts",
		"inventory_count_lines",
		"campaigns",
		"campaign_messages",
	}
	for _, table := range tables {
		assert.Contains(t, schemaSQL, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (", table),
			"schema is missing table %s", table)
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	// Re-running the migrate command must be safe, so every CREATE
	// carries IF NOT EXISTS.
	for _, line := range strings.Split(schemaSQL, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "CREATE ") {
			assert.Contains(t, trimmed, "IF NOT EXISTS", "statement is not idempotent: %s", trimmed)
		}
	}
}

func TestSchemaTenantScoping(t *testing.T) {
	// Every table is tenant scoped and carries the audit columns.
	for _, column := range []string{"tenant_id", "created_at", "updated_at", "created_by", "updated_by"} {
		count := strings.Count(schemaSQL, column)
		assert.GreaterOrEqual(t, count, 13, "column %s missing from some tables", column)
	}
	assert.Contains(t, schemaSQL, "metadata", "subscriptions metadata column missing")
	assert.Contains(t, schemaSQL, "JSONB")
}
