package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Grade bounds. GradeUnset marks a child whose grade could not be parsed;
// PlanningSession.Validate rejects it before any scoring happens.
const (
	GradeUnset = -100
	GradePreK  = -1
	GradeMax   = 12
)

var gradeLabels = map[string]int{
	"pre-k":        GradePreK,
	"kindergarten": 0,
	"1st grade":    1,
	"2nd grade":    2,
	"3rd grade":    3,
	"4th grade":    4,
	"5th grade":    5,
	"6th grade":    6,
	"7th grade":    7,
	"8th grade":    8,
	"9th grade":    9,
	"10th grade":   10,
	"11th grade":   11,
	"12th grade":   12,
}

// GradeFromLabel maps a display label such as "3rd Grade" to its ordinal
// value (Pre-K=-1 ... 12). The second return value is false for unknown
// labels.
func GradeFromLabel(label string) (int, bool) {
	g, ok := gradeLabels[strings.ToLower(strings.TrimSpace(label))]
	return g, ok
}

// GradeLabel renders an ordinal grade as its display label.
func GradeLabel(grade int) string {
	switch {
	case grade == GradePreK:
		return "Pre-K"
	case grade == 0:
		return "Kindergarten"
	case grade == 1:
		return "1st Grade"
	case grade == 2:
		return "2nd Grade"
	case grade == 3:
		return "3rd Grade"
	case grade >= 4 && grade <= GradeMax:
		return fmt.Sprintf("%dth Grade", grade)
	default:
		return fmt.Sprintf("Grade %d", grade)
	}
}

// InterestStrength expresses how much a child cares about an interest.
type InterestStrength string

const (
	StrengthLove InterestStrength = "love"
	StrengthLike InterestStrength = "like"
	StrengthTry  InterestStrength = "try"
)

// Multiplier returns the scoring multiplier for the strength. Unknown
// strengths fall back to the neutral "try" multiplier.
func (s InterestStrength) Multiplier() float64 {
	switch s {
	case StrengthLove:
		return 1.5
	case StrengthLike:
		return 1.2
	default:
		return 1.0
	}
}

// Interest is a named activity a child wants, with an attached strength.
// Upstream data carries interests either as bare strings or as
// {name, strength} objects; UnmarshalJSON normalizes both shapes once on
// ingestion so scoring never branches on type.
type Interest struct {
	Name     string           `json:"name"`
	Strength InterestStrength `json:"strength"`
}

func (i *Interest) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		i.Name = name
		i.Strength = StrengthLike
		return nil
	}
	type plain Interest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("interest: %w", err)
	}
	if p.Strength == "" {
		p.Strength = StrengthLike
	}
	*i = Interest(p)
	return nil
}

// Child is one child in the planning session. ID is the child's stable
// index within the session. Children are immutable during an optimization
// pass.
type Child struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Grade     int        `json:"grade"`
	Interests []Interest `json:"interests"`
}

// DisplayName returns the child's name, or a positional fallback when the
// form left it blank.
func (c Child) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("Child %d", c.ID+1)
}
