package forecast

// Typical windows used when a bare flag is given without an explicit count.
const (
	DefaultDays  = 4
	DefaultHours = 12
)

// Intent carries the raw user signals from the CLI. A zero Days/Hours means
// the user gave no explicit count.
type Intent struct {
	Daily  bool
	Days   int
	Hourly bool
	Hours  int
	Mixed  bool
}

// Selection is the resolved forecast request: the effective kind plus the
// effective day/hour counts. Days/Hours stay zero when the kind does not
// request that range.
type Selection struct {
	Kind  Kind
	Days  int
	Hours int
}

// Resolve derives the single effective forecast kind from the user signals.
// First matching rule wins:
//  1. nothing set -> current conditions only
//  2. mixed flag, or both a daily and an hourly signal -> all three blocks
//  3. a daily signal -> daily
//  4. an hourly signal -> hourly
func Resolve(in Intent) Selection {
	wantDaily := in.Daily || in.Days > 0
	wantHourly := in.Hourly || in.Hours > 0

	switch {
	case !in.Mixed && !wantDaily && !wantHourly:
		return Selection{Kind: KindCurrent}
	case in.Mixed || (wantDaily && wantHourly):
		return Selection{
			Kind:  KindMixed,
			Days:  orDefault(in.Days, DefaultDays),
			Hours: orDefault(in.Hours, DefaultHours),
		}
	case wantDaily:
		return Selection{Kind: KindDaily, Days: orDefault(in.Days, DefaultDays)}
	default:
		return Selection{Kind: KindHourly, Hours: orDefault(in.Hours, DefaultHours)}
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
