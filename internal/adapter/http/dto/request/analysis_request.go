package request

// Range checks on the analysis knobs live in the use cases so that every
// caller gets the same INVALID_ANALYSIS_INPUT error.

type SimulateRequest struct {
	Iterations      int     `json:"iterations"`
	ConfidenceLevel float64 `json:"confidence_level"`
	PersistResults  bool    `json:"persist_results"`
}

type SensitivityRequest struct {
	Variables      []string `json:"variables"`
	RangePercent   float64  `json:"range_percent"`
	Steps          int      `json:"steps"`
	PersistResults bool     `json:"persist_results"`
}

type CompareRequest struct {
	ScenarioIDs []string `json:"scenario_ids"`
	Metrics     []string `json:"metrics"`
}
