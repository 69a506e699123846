package auditlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	e1 := Entry{
		Timestamp: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		BatchID:   "batch-1",
		Filename:  "nordea-export.csv",
		Documents: 3,
		Entries:   6,
		Warnings:  1,
	}
	require.NoError(t, Append(dir, []Entry{e1}))

	e2 := e1
	e2.BatchID = "batch-2"
	e2.Warnings = 0
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "batch-1", entries[0].BatchID)
	assert.Equal(t, "batch-2", entries[1].BatchID)
	assert.Equal(t, 3, entries[0].Documents)
	assert.Equal(t, 6, entries[0].Entries)
	assert.True(t, entries[0].Timestamp.Equal(e1.Timestamp))
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntryBadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	assert.Error(t, err)
}
