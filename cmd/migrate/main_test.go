package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleMigration = `-- +migrate Up
CREATE TABLE promos (
    id SERIAL PRIMARY KEY
);

-- +migrate Down
DROP TABLE promos;
`

func TestExtractSection(t *testing.T) {
	up := extractSection(sampleMigration, "Up")
	assert.Contains(t, up, "CREATE TABLE promos")
	assert.NotContains(t, up, "DROP TABLE")

	down := extractSection(sampleMigration, "Down")
	assert.Contains(t, down, "DROP TABLE promos")
	assert.NotContains(t, down, "CREATE TABLE")
}

func TestExtractSection_MissingSection(t *testing.T) {
	assert.Empty(t, extractSection("SELECT 1;", "Up"))
}
