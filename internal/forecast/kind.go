package forecast

// Kind selects which of the current/daily/hourly blocks a single
// request/response cycle carries. Exactly one Kind describes a cycle.
type Kind int

const (
	KindCurrent Kind = iota
	KindDaily
	KindHourly
	KindMixed
)

func (k Kind) String() string {
	switch k {
	case KindCurrent:
		return "current"
	case KindDaily:
		return "daily"
	case KindHourly:
		return "hourly"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// HasCurrent reports whether the kind implies the current-conditions block.
func (k Kind) HasCurrent() bool {
	return k == KindCurrent || k == KindMixed
}

// HasDaily reports whether the kind implies the daily block.
func (k Kind) HasDaily() bool {
	return k == KindDaily || k == KindMixed
}

// HasHourly reports whether the kind implies the hourly block.
func (k Kind) HasHourly() bool {
	return k == KindHourly || k == KindMixed
}
