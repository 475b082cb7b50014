package models

import (
	"strings"

	"gorm.io/gorm"
)

// MatchRule maps raw statement merchant strings onto clean descriptions
// during imports. Rules are applied in priority order; Match is a glob
// pattern, e.g. "AMAZON*".
type MatchRule struct {
	DefaultModel
	Priority    uint
	Match       string
	Replacement string
}

// BeforeSave normalizes the rule.
func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Replacement = strings.TrimSpace(r.Replacement)

	return nil
}
