package personalization

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength       = 50
	maxDedicationLength = 500
)

// Rule identifies a single validation rule.
type Rule string

const (
	RuleEmptyName             Rule = "EMPTY_NAME"
	RuleNameTooLong           Rule = "NAME_TOO_LONG"
	RuleInvalidNameCharacters Rule = "INVALID_NAME_CHARACTERS"
	RuleDedicationTooLong     Rule = "DEDICATION_TOO_LONG"
	RuleInappropriateContent  Rule = "INAPPROPRIATE_CONTENT"
)

// Violation points at one violated rule on one field.
type Violation struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Violations aggregates every violated rule so callers can surface all of
// them in one pass. A nil/empty slice means the input is valid.
type Violations []Violation

func (v Violations) Messages() []string {
	out := make([]string, 0, len(v))
	for _, violation := range v {
		out = append(out, violation.Message)
	}
	return out
}

var nameCharacters = regexp.MustCompile(`^[A-Za-z \-']+$`)

// Validate runs every rule independently and returns the full set of
// violations. The screener may be nil, which disables content screening.
func Validate(input Input, screener Screener) Violations {
	var out Violations

	name := strings.TrimSpace(input.ChildName)
	switch {
	case name == "":
		out = append(out, Violation{
			Field:   "childName",
			Rule:    RuleEmptyName,
			Message: "Child name is required",
		})
	default:
		if utf8.RuneCountInString(input.ChildName) > maxNameLength {
			out = append(out, Violation{
				Field:   "childName",
				Rule:    RuleNameTooLong,
				Message: "Child name must be 50 characters or less",
			})
		}
		if !nameCharacters.MatchString(input.ChildName) {
			out = append(out, Violation{
				Field:   "childName",
				Rule:    RuleInvalidNameCharacters,
				Message: "Child name can only contain letters, spaces, hyphens, and apostrophes",
			})
		}
	}

	if utf8.RuneCountInString(input.Dedication) > maxDedicationLength {
		out = append(out, Violation{
			Field:   "dedication",
			Rule:    RuleDedicationTooLong,
			Message: "Dedication must be 500 characters or less",
		})
	}

	if screener != nil {
		combined := input.ChildName + " " + input.Dedication
		if !screener.Allow(combined) {
			out = append(out, Violation{
				Field:   "dedication",
				Rule:    RuleInappropriateContent,
				Message: "Content contains inappropriate language",
			})
		}
	}

	return out
}
