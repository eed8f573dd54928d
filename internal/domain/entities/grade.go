package entities

import "strings"

// Grade is a standardized condition bucket used to index source and offer prices.
type Grade string

const (
	GradeA   Grade = "gradeA"
	GradeB   Grade = "gradeB"
	GradeC   Grade = "gradeC"
	GradeD   Grade = "gradeD"
	GradeDOA Grade = "gradeDOA"
)

// AllGrades lists grades in display order.
var AllGrades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeDOA}

func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeDOA:
		return true
	}
	return false
}

// GradeMargins maps a grade to a margin value. Depending on the policy mode the
// value is a percentage (0-100) or a flat currency deduction.
type GradeMargins map[Grade]float64

// Device conditions as presented to customers.
const (
	ConditionFlawless = "Flawless"
	ConditionGood     = "Good"
	ConditionFair     = "Fair"
	ConditionBroken   = "Broken"
	ConditionNoPower  = "No Power"
)

var conditionGrades = map[string]Grade{
	strings.ToLower(ConditionFlawless): GradeA,
	strings.ToLower(ConditionGood):     GradeB,
	strings.ToLower(ConditionFair):     GradeC,
	strings.ToLower(ConditionBroken):   GradeD,
	strings.ToLower(ConditionNoPower):  GradeDOA,
}

var canonicalConditions = map[string]string{
	strings.ToLower(ConditionFlawless): ConditionFlawless,
	strings.ToLower(ConditionGood):     ConditionGood,
	strings.ToLower(ConditionFair):     ConditionFair,
	strings.ToLower(ConditionBroken):   ConditionBroken,
	strings.ToLower(ConditionNoPower):  ConditionNoPower,
}

// GradeForCondition maps a customer-facing condition (case-insensitive) to its grade
// and returns the canonical spelling of the condition.
func GradeForCondition(condition string) (Grade, string, bool) {
	key := strings.ToLower(strings.TrimSpace(condition))
	g, ok := conditionGrades[key]
	if !ok {
		return "", "", false
	}
	return g, canonicalConditions[key], true
}

// Network carriers accepted for quotes.
const (
	NetworkUnlocked = "Unlocked"
	NetworkATT      = "AT&T"
	NetworkTMobile  = "T-Mobile"
	NetworkVerizon  = "Verizon"
	NetworkOther    = "Other"
)

var networks = []string{NetworkUnlocked, NetworkATT, NetworkTMobile, NetworkVerizon, NetworkOther}

// NormalizeNetwork returns the canonical carrier name for a case-insensitive input.
func NormalizeNetwork(network string) (string, bool) {
	v := strings.TrimSpace(network)
	for _, n := range networks {
		if strings.EqualFold(n, v) {
			return n, true
		}
	}
	return "", false
}
