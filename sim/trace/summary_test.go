package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace_ReturnsZeroValues(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalDispatched)
	assert.Equal(t, int64(-1), summary.FirstCycle)
	assert.Equal(t, int64(-1), summary.LastCycle)
}

func TestSummarize_EmptyTrace_ReturnsZeroValues(t *testing.T) {
	summary := Summarize(NewScheduleTrace())

	assert.Equal(t, 0, summary.TotalDispatched)
	assert.Equal(t, 0, summary.ActiveCycles)
}

func TestSummarize_AggregatesRecords(t *testing.T) {
	// GIVEN a trace with dispatches at cycles 0, 1 and 4
	st := NewScheduleTrace()
	st.Record(DispatchRecord{Cycle: 0, Instructions: []DispatchedInstr{
		{Seq: 1, Label: "add r1 r2 r3", Priority: -2},
		{Seq: 2, Label: "add r4 r5 r6", Priority: -1},
	}})
	st.Record(DispatchRecord{Cycle: 1, Instructions: []DispatchedInstr{
		{Seq: 3, Label: "lw r7 a", Priority: -1},
	}})
	st.Record(DispatchRecord{Cycle: 4, Instructions: []DispatchedInstr{
		{Seq: 4, Label: "sw r7 b", Priority: -1},
	}})

	// WHEN summarized
	summary := Summarize(st)

	// THEN the aggregates reflect the records
	assert.Equal(t, 4, summary.TotalDispatched)
	assert.Equal(t, 3, summary.ActiveCycles)
	assert.Equal(t, int64(0), summary.FirstCycle)
	assert.Equal(t, int64(4), summary.LastCycle)
	assert.Equal(t, 2, summary.MaxPerCycle)
}
