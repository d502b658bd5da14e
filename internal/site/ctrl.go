package site

// DefaultCtrlKey is the ctrl row acting as the fleet-wide default range.
const DefaultCtrlKey = "000"

// CtrlRange holds the per-site alert bounds: mrplel/mrpleh bound the helium
// pressure (psi), mrlevl/mrlevh bound the helium level (%). A nil bound means
// no limit on that side. Field names follow the ctrl table columns so the
// wire shape stays compatible with existing consumers.
type CtrlRange struct {
	Mrplel *float64 `json:"mrplel"`
	Mrpleh *float64 `json:"mrpleh"`
	Mrlevl *float64 `json:"mrlevl"`
	Mrlevh *float64 `json:"mrlevh"`
}

// PressureOut reports whether a pressure value violates the range.
func (r CtrlRange) PressureOut(v *float64) bool {
	return outOfRange(v, r.Mrplel, r.Mrpleh)
}

// LevelOut reports whether a level value violates the range.
func (r CtrlRange) LevelOut(v *float64) bool {
	return outOfRange(v, r.Mrlevl, r.Mrlevh)
}

// outOfRange flags v iff it is non-nil and falls below a present low bound or
// above a present high bound. A nil value or a fully unbounded range never
// flags.
func outOfRange(v, low, high *float64) bool {
	if v == nil {
		return false
	}
	if low != nil && *v < *low {
		return true
	}
	if high != nil && *v > *high {
		return true
	}
	return false
}

// ResolveCtrl picks the range applying to a site: its own row when present,
// otherwise the fleet default (the "000" row), otherwise nil.
func ResolveCtrl(ctrl map[string]CtrlRange, ctrlDefault *CtrlRange, siteKey string) *CtrlRange {
	if r, ok := ctrl[siteKey]; ok {
		return &r
	}
	return ctrlDefault
}
