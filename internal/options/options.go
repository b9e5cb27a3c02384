// Package options defines names of command-line options which are used for passing connection parameters
// to Postgres client utilities, e.g. psql or pg_dump.
package options

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lesovsky/pgconnparms/internal/postgres"
)

// Default names of emitted options, the same as used by psql.
const (
	DefaultDbname     = "--dbname"
	DefaultHost       = "--host"
	DefaultPort       = "--port"
	DefaultUsername   = "--username"
	DefaultNoPassword = "--no-password"
	DefaultPassword   = "--password"
)

var longNameRe = regexp.MustCompile(`^--[\w-]+$`)

// FlagNames defines names of options used for each connection parameter.
type FlagNames struct {
	Dbname     string
	Host       string
	Port       string
	Username   string
	NoPassword string
	Password   string
}

// NewFlagNames returns FlagNames with default names.
func NewFlagNames() FlagNames {
	return FlagNames{
		Dbname:     DefaultDbname,
		Host:       DefaultHost,
		Port:       DefaultPort,
		Username:   DefaultUsername,
		NoPassword: DefaultNoPassword,
		Password:   DefaultPassword,
	}
}

// Validate checks all user-configurable names. Password name is not configurable and is not checked.
func (f FlagNames) Validate() error {
	checks := []struct {
		option string
		value  string
	}{
		{option: "dbname", value: f.Dbname},
		{option: "host", value: f.Host},
		{option: "port", value: f.Port},
		{option: "username", value: f.Username},
		{option: "no-password", value: f.NoPassword},
	}

	for _, c := range checks {
		if !validName(c.value) {
			return fmt.Errorf("option %s has an invalid value '%s'", c.option, c.value)
		}
	}

	return nil
}

// validName checks the name is either in short form (dash and single alphanumeric) or in long form
// (double dash and word characters or dashes).
func validName(name string) bool {
	switch n := utf8.RuneCountInString(name); {
	case n < 2:
		return false
	case n == 2:
		r, _ := utf8.DecodeRuneInString(name[1:])
		return name[0] == '-' && (unicode.IsLetter(r) || unicode.IsDigit(r))
	default:
		return longNameRe.MatchString(name)
	}
}

// Format assembles options line from connection parameters. Password option is used instead of no-password
// option when askPassword is true.
func (f FlagNames) Format(opts postgres.ConnectionOptions, askPassword bool) string {
	var b strings.Builder

	b.WriteString(formatOption(f.Dbname, opts.Dbname, false))
	b.WriteString(formatOption(f.Host, opts.Host, false))
	b.WriteString(formatOption(f.Port, opts.Port, false))
	b.WriteString(formatOption(f.Username, opts.User, false))

	if askPassword {
		b.WriteString(formatOption(f.Password, "", true))
	} else {
		b.WriteString(formatOption(f.NoPassword, "", true))
	}

	return b.String()
}

// formatOption returns option followed by a space. Long options are joined with their values using '='.
func formatOption(name, value string, flag bool) string {
	if value == "" && !flag {
		return ""
	}

	if flag {
		return name + " "
	}

	if len(name) > 2 && strings.HasPrefix(name, "--") {
		return name + "=" + value + " "
	}

	return name + " " + value + " "
}
