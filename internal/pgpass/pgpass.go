// Package pgpass writes connection credentials into Postgres password file.
// See https://www.postgresql.org/docs/current/libpq-pgpass.html for format details.
package pgpass

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lesovsky/pgconnparms/internal/postgres"
	"github.com/pkg/errors"
)

const (
	// Filename is the name of password file created in the specified directory.
	Filename = ".pgpass"

	// wildcard matches any value and used instead of empty fields.
	wildcard = "*"

	// fileMode allows access to the file only for its owner, otherwise libpq ignores the file.
	fileMode os.FileMode = 0600
)

// Entry defines a single line of password file.
type Entry struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
}

// NewEntry creates password file entry from connection options.
func NewEntry(opts postgres.ConnectionOptions) Entry {
	return Entry{
		Host:     opts.Host,
		Port:     opts.Port,
		Database: opts.Dbname,
		Username: opts.User,
		Password: opts.Password,
	}
}

// String returns entry in 'host:port:database:username:password' format, empty fields are replaced with wildcard.
func (e Entry) String() string {
	fields := []string{e.Host, e.Port, e.Database, e.Username, e.Password}
	for i := range fields {
		if fields[i] == "" {
			fields[i] = wildcard
		}
	}
	return strings.Join(fields, ":")
}

// Append appends entry to the password file located in dir. The file is created if it does not exist. Access to
// the file is restricted to its owner after writing.
func Append(dir string, e Entry) error {
	path := filepath.Join(dir, Filename)

	if err := write(path, e.String()+"\n"); err != nil {
		return err
	}

	// Mode passed to open is applied only to newly created files, restrict existing files too.
	if err := os.Chmod(path, fileMode); err != nil {
		return errors.Wrapf(err, "set permissions of %s failed", path)
	}

	return nil
}

// write appends line to the file and closes it.
func write(path string, line string) (err error) {
	f, err := os.OpenFile(filepath.Clean(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return errors.Wrapf(err, "open %s failed", path)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s failed", path)
		}
	}()

	if _, err = f.WriteString(line); err != nil {
		return errors.Wrapf(err, "write to %s failed", path)
	}

	return nil
}
