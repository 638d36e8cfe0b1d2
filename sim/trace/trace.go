package trace

// ScheduleTrace collects dispatch records during a simulation run.
// Records are appended in cycle order; cycles without dispatches leave no
// record, so the trace is exactly the observable output of the run.
type ScheduleTrace struct {
	Records []DispatchRecord `json:"records"`
}

// NewScheduleTrace creates a ScheduleTrace ready for recording.
func NewScheduleTrace() *ScheduleTrace {
	return &ScheduleTrace{
		Records: make([]DispatchRecord, 0),
	}
}

// Record appends a dispatch record.
func (st *ScheduleTrace) Record(record DispatchRecord) {
	st.Records = append(st.Records, record)
}
