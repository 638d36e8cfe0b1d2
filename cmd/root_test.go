package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/dispatch-sim/dispatch-sim/sim"
	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

func TestRunPipeline_SampleProgram(t *testing.T) {
	// GIVEN the sample program and the default machine preset from testdata
	instrs, err := ParseProgramFile(filepath.Join("..", "testdata", "program.s"))
	assert.NoError(t, err)
	assert.Len(t, instrs, 8)

	cfg, err := GetMachineConfig(filepath.Join("..", "testdata", "machines.yaml"), "default")
	assert.NoError(t, err)

	// WHEN the program is scheduled with the critical-path heuristic
	s, err := sim.NewSimulator(*cfg, sim.PriorityTime, instrs)
	assert.NoError(t, err)
	tr := s.Run()

	// THEN every instruction was dispatched and the trace covers all of them
	summary := trace.Summarize(tr)
	assert.Equal(t, len(instrs), summary.TotalDispatched)
	assert.Equal(t, int64(0), summary.FirstCycle)
	for _, in := range instrs {
		assert.Equal(t, sim.StatusDone, in.Status(), "%s", in)
	}
}

func TestWriteSchedule_RoundTripsThroughJSON(t *testing.T) {
	// GIVEN a recorded trace
	tr := trace.NewScheduleTrace()
	tr.Record(trace.DispatchRecord{Cycle: 0, Instructions: []trace.DispatchedInstr{
		{Seq: 1, Label: "add r1 r2 r3", Priority: -2},
	}})

	// WHEN written to disk
	path := filepath.Join(t.TempDir(), "schedule.json")
	assert.NoError(t, WriteSchedule(path, tr))

	// THEN the dump parses back with records and summary intact
	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var out struct {
		Records []trace.DispatchRecord `json:"records"`
		Summary *trace.TraceSummary    `json:"summary"`
	}
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, tr.Records, out.Records)
	assert.Equal(t, 1, out.Summary.TotalDispatched)
}
