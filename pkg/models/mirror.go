package models

// SpeedLabel classifies a mirror by the response time reported on the status page.
type SpeedLabel int

const (
	Unclassified SpeedLabel = iota
	VeryFast
	Fast
	Average
	Slow
	NotAvailable
)

func (l SpeedLabel) String() string {
	switch l {
	case VeryFast:
		return "Very Fast"
	case Fast:
		return "Fast"
	case Average:
		return "Average"
	case Slow:
		return "Slow"
	case NotAvailable:
		return "N/A"
	default:
		return "Unclassified"
	}
}

type MirrorStatus struct {
	Name  string     `json:"name"`
	Speed string     `json:"speed"`
	Label SpeedLabel `json:"label"`
}
