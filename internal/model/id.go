package model

import (
	"fmt"
	"strconv"
)

// ParseID parses the unsigned decimal form of a node identifier. An empty string yields 0.
func ParseID(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse id %q: %w", s, err)
	}
	return id, nil
}

// FormatID renders an identifier the way the node does.
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
