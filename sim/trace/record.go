// Package trace provides dispatch-trace recording for schedule analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// DispatchedInstr captures one instruction at the moment it is dispatched.
type DispatchedInstr struct {
	Seq      int    `json:"seq"`
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// DispatchRecord captures one cycle in which at least one instruction was
// dispatched, with the newly dispatched instructions in dispatch order.
type DispatchRecord struct {
	Cycle        int64             `json:"cycle"`
	Instructions []DispatchedInstr `json:"instructions"`
}
