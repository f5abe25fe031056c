package interfaces

import "time"

// IAnalysisRecorder receives operational measurements from the use cases.
type IAnalysisRecorder interface {
	ObserveAnalysis(kind string, duration time.Duration)
	ObserveSimulationTrials(trials int)
	IncLifecycle(action string)
}

// NopRecorder discards every measurement.
type NopRecorder struct{}

func (NopRecorder) ObserveAnalysis(string, time.Duration) {}
func (NopRecorder) ObserveSimulationTrials(int)           {}
func (NopRecorder) IncLifecycle(string)                   {}
