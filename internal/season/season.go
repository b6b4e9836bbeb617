// Package season contains utilities for recipe seasons.
package season

import (
	"fmt"
	"time"
)

type Season string

const (
	All    Season = "Toutes"
	Spring Season = "Printemps"
	Summer Season = "Été"
	Autumn Season = "Automne"
	Winter Season = "Hiver"
)

// byQuarter maps a calendar quarter to its season. January through March is
// winter, and so on, matching the seasons stored by existing deployments.
var byQuarter = [4]Season{Winter, Spring, Summer, Autumn}

// Values lists every accepted season, "all seasons" first.
func Values() []Season {
	return []Season{All, Spring, Summer, Autumn, Winter}
}

func (s Season) String() string {
	return string(s)
}

func (s Season) Valid() bool {
	switch s {
	case All, Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}

func (s Season) Validate() error {
	if !s.Valid() {
		return fmt.Errorf("unknown season: %q", string(s))
	}
	return nil
}

// Parse converts s into a Season, failing on anything outside the enumeration.
func Parse(s string) (Season, error) {
	v := Season(s)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Current returns the season of now.
func Current(now time.Time) Season {
	return byQuarter[(int(now.Month())-1)/3]
}

// Matches reports whether a recipe stored with season recipe should be
// offered during target.
func Matches(recipe, target Season) bool {
	return recipe == target || recipe == All
}
