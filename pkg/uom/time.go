package uom

// Time is a unit of elapsed time. The base unit is Seconds.
//
// Years are 365-day years.
type Time uint8

const (
	Seconds Time = iota
	Minutes
	Hours
	Days
	Weeks
	Years
)

var timeDefs = [...]Def{
	Seconds: {Name: "Seconds", Abbr: "s", Scale: 1},
	Minutes: {Name: "Minutes", Abbr: "min", Scale: 60},
	Hours:   {Name: "Hours", Abbr: "hr", Scale: 3600},
	Days:    {Name: "Days", Abbr: "d", Scale: 86400},
	Weeks:   {Name: "Weeks", Abbr: "wk", Scale: 604800},
	Years:   {Name: "Years", Abbr: "yr", Scale: 31536000},
}

var timeOrder = [...]Time{
	Seconds, Minutes, Hours, Days, Weeks, Years,
}

func (u Time) Def() Def { return lookup(timeDefs[:], u, "Time") }
func (Time) Units() []Time { return ordered(timeOrder[:]) }
func (u Time) Name() string { return u.Def().Name }
func (u Time) Abbr() string { return u.Def().Abbr }
func (u Time) NameAndAbbr() string { return u.Def().NameAndAbbr() }
func (u Time) String() string { return u.Def().Name }

// Convert converts v from u to another time unit.
func (u Time) Convert(v float64, to Time) float64 { return Convert(v, u, to) }

// ParseTime parses a time unit; see Parse.
func ParseTime(s string) (Time, bool) { return Parse[Time](s) }
