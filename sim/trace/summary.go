package trace

// TraceSummary aggregates statistics from a ScheduleTrace.
type TraceSummary struct {
	TotalDispatched int   // instructions dispatched over the whole run
	ActiveCycles    int   // cycles with at least one dispatch
	FirstCycle      int64 // cycle of the first dispatch (-1 if none)
	LastCycle       int64 // cycle of the last dispatch (-1 if none)
	MaxPerCycle     int   // widest single-cycle issue
}

// Summarize computes aggregate statistics from a ScheduleTrace.
// Safe for nil or empty traces (returns FirstCycle/LastCycle of -1).
func Summarize(st *ScheduleTrace) *TraceSummary {
	summary := &TraceSummary{
		FirstCycle: -1,
		LastCycle:  -1,
	}
	if st == nil || len(st.Records) == 0 {
		return summary
	}

	summary.FirstCycle = st.Records[0].Cycle
	summary.LastCycle = st.Records[len(st.Records)-1].Cycle
	summary.ActiveCycles = len(st.Records)
	for _, r := range st.Records {
		summary.TotalDispatched += len(r.Instructions)
		if len(r.Instructions) > summary.MaxPerCycle {
			summary.MaxPerCycle = len(r.Instructions)
		}
	}

	return summary
}
