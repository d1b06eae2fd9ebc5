package models

import (
	"strconv"
	"strings"
)

// FamilySignals are the coarse age-bucket flags derived from a trip
// profile. Rule functions branch on these instead of re-parsing ages.
type FamilySignals struct {
	HasInfant    bool // under 2
	HasToddler   bool // 2-4
	HasSchoolAge bool // 5-12
	HasTeen      bool // 13-17
	HasElder     bool // 65 and up
	ChildCount   int
	// MaxChildAgeGap is the spread between the oldest and youngest
	// child with a parseable age. Zero with fewer than two such kids.
	MaxChildAgeGap int
}

// ParseAge parses a free-text age string. Ages come straight from the
// intake form, so anything unparsable or out of range is reported as
// unknown rather than an error.
func ParseAge(raw string) (int, bool) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age < 0 || age > 130 {
		return 0, false
	}
	return age, true
}

// ComputeFamilySignals derives the age-bucket flags for a profile.
// Members with unknown ages are excluded from bucketing.
func ComputeFamilySignals(profile *TripProfile) FamilySignals {
	var signals FamilySignals
	if profile == nil {
		return signals
	}

	signals.ChildCount = len(profile.Children)

	minChildAge, maxChildAge := -1, -1
	for _, child := range profile.Children {
		age, ok := ParseAge(child.Age)
		if !ok {
			continue
		}
		signals.bucket(age)
		if minChildAge == -1 || age < minChildAge {
			minChildAge = age
		}
		if age > maxChildAge {
			maxChildAge = age
		}
	}
	if minChildAge != -1 && maxChildAge > minChildAge {
		signals.MaxChildAgeGap = maxChildAge - minChildAge
	}

	for _, adult := range profile.Adults {
		age, ok := ParseAge(adult.Age)
		if !ok {
			continue
		}
		signals.bucket(age)
	}

	return signals
}

// HasYoungChildren reports whether the family travels with anyone
// under school age.
func (s FamilySignals) HasYoungChildren() bool {
	return s.HasInfant || s.HasToddler
}

// HasChildren reports whether any age-bucketed minor is on the trip.
func (s FamilySignals) HasChildren() bool {
	return s.HasInfant || s.HasToddler || s.HasSchoolAge || s.HasTeen
}

func (s *FamilySignals) bucket(age int) {
	switch {
	case age < 2:
		s.HasInfant = true
	case age <= 4:
		s.HasToddler = true
	case age <= 12:
		s.HasSchoolAge = true
	case age <= 17:
		s.HasTeen = true
	case age >= 65:
		s.HasElder = true
	}
}
