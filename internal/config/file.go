package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// LoadFile reads an ini file into the parser's options. Call it before parsing
// the command line so that command line values override the file.
// Keys are matched against the ini-name tag, then the long name.
func LoadFile(path string, parser *flags.Parser) error {
	if err := flags.NewIniParser(parser).ParseFile(path); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
