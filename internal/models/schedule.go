// ABOUTME: Day schedule model mapping the four program days to tier assignments.
// ABOUTME: Each day names one T1 role and one T2 role; other mains are absent.
package models

// ProgramDay names one of the four rotating program days.
type ProgramDay string

const (
	DayA1 ProgramDay = "A1"
	DayB1 ProgramDay = "B1"
	DayA2 ProgramDay = "A2"
	DayB2 ProgramDay = "B2"
)

// ProgramDays lists the rotation in order.
var ProgramDays = []ProgramDay{DayA1, DayB1, DayA2, DayB2}

// IsValidProgramDay checks if a string is a valid program day.
func IsValidProgramDay(s string) bool {
	for _, d := range ProgramDays {
		if string(d) == s {
			return true
		}
	}
	return false
}

// DayAssignment names which role lifts T1 and which lifts T2 on a day.
type DayAssignment struct {
	Day    ProgramDay `json:"day" yaml:"day"`
	T1Role Role       `json:"t1_role" yaml:"t1_role"`
	T2Role Role       `json:"t2_role" yaml:"t2_role"`
}

// TierFor returns the tier a main-lift role holds on this day, or false
// if the role is not assigned.
func (a DayAssignment) TierFor(role Role) (Tier, bool) {
	switch role {
	case a.T1Role:
		return Tier1, true
	case a.T2Role:
		return Tier2, true
	}
	return "", false
}

// Schedule is the day→role→tier table for the whole program.
type Schedule map[ProgramDay]DayAssignment

// DefaultSchedule returns the standard four-day rotation: every main
// lift appears once as T1 and once as T2 across the cycle.
func DefaultSchedule() Schedule {
	return Schedule{
		DayA1: {Day: DayA1, T1Role: RoleSquat, T2Role: RoleBench},
		DayB1: {Day: DayB1, T1Role: RoleOHP, T2Role: RoleDeadlift},
		DayA2: {Day: DayA2, T1Role: RoleBench, T2Role: RoleSquat},
		DayB2: {Day: DayB2, T1Role: RoleDeadlift, T2Role: RoleOHP},
	}
}
