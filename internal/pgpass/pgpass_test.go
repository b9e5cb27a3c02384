package pgpass

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgpassfile"
	"github.com/lesovsky/pgconnparms/internal/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	got := NewEntry(postgres.ConnectionOptions{
		Host: "db.example.com", Port: "5432", User: "alice", Password: "secret", Dbname: "mydb",
	})
	assert.Equal(t, Entry{Host: "db.example.com", Port: "5432", Database: "mydb", Username: "alice", Password: "secret"}, got)
}

func TestEntry_String(t *testing.T) {
	testcases := []struct {
		entry Entry
		want  string
	}{
		{
			entry: Entry{Host: "db.example.com", Port: "5432", Database: "mydb", Username: "alice", Password: "secret"},
			want:  "db.example.com:5432:mydb:alice:secret",
		},
		{
			entry: Entry{Host: "db.example.com", Database: "mydb", Username: "alice"},
			want:  "db.example.com:*:mydb:alice:*",
		},
		{entry: Entry{}, want: "*:*:*:*:*"},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.want, tc.entry.String())
	}
}

func TestAppend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)

	e1 := Entry{Host: "db.example.com", Port: "5432", Database: "mydb", Username: "alice", Password: "secret"}
	e2 := Entry{Host: "localhost", Database: "test", Username: "bob", Password: "qwerty"}

	require.NoError(t, Append(dir, e1))
	require.NoError(t, Append(dir, e2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "db.example.com:5432:mydb:alice:secret\nlocalhost:*:test:bob:qwerty\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Written entries should be understood by libpq-compatible readers.
	passfile, err := pgpassfile.ReadPassfile(path)
	require.NoError(t, err)
	assert.Len(t, passfile.Entries, 2)
	assert.Equal(t, "secret", passfile.FindPassword("db.example.com", "5432", "mydb", "alice"))
	assert.Equal(t, "qwerty", passfile.FindPassword("localhost", "6432", "test", "bob"))
	assert.Equal(t, "", passfile.FindPassword("localhost", "5432", "test", "alice"))
}

func TestAppend_existingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)

	require.NoError(t, os.WriteFile(path, []byte("*:*:*:postgres:postgres\n"), 0644))
	require.NoError(t, Append(dir, Entry{Host: "localhost", Database: "test", Username: "bob"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*:*:*:postgres:postgres\nlocalhost:*:test:bob:*\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestAppend_invalidDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nonexistent")
	assert.Error(t, Append(dir, Entry{Host: "localhost", Database: "test", Username: "bob"}))
}
