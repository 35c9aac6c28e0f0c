package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDDLStatements(t *testing.T) {
	content := `-- header
CREATE TABLE a (
  id STRING(64) NOT NULL,
) PRIMARY KEY (id);

-- index
CREATE UNIQUE INDEX idx_a_id ON a(id);
`
	assert.Equal(t, []string{
		"CREATE TABLE a (\nid STRING(64) NOT NULL,\n) PRIMARY KEY (id)",
		"CREATE UNIQUE INDEX idx_a_id ON a(id)",
	}, splitDDLStatements(content))
}

func TestObjectName(t *testing.T) {
	tests := []struct {
		stmt string
		want string
	}{
		{"CREATE TABLE products (\nid INT64) PRIMARY KEY (id)", "products"},
		{"create table `Categories` (slug STRING(32)) PRIMARY KEY (slug)", "categories"},
		{"CREATE UNIQUE INDEX idx_products_slug ON products(slug)", "idx_products_slug"},
		{"CREATE NULL_FILTERED INDEX idx_x ON products(x)", "idx_x"},
		{"ALTER TABLE products ADD COLUMN x INT64", ""},
	}

	for _, tt := range tests {
		t.Run(tt.stmt, func(t *testing.T) {
			assert.Equal(t, tt.want, objectName(tt.stmt))
		})
	}
}

func TestPendingStatements_CatalogMigration(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_catalog.sql"))
	require.NoError(t, err)
	statements := splitDDLStatements(string(content))
	require.Len(t, statements, 4)

	assert.Equal(t, statements, pendingStatements(statements, existingObjects(nil)))

	partial := existingObjects(statements[:2])
	assert.Equal(t, statements[2:], pendingStatements(statements, partial))

	assert.Empty(t, pendingStatements(statements, existingObjects(statements)))
}
