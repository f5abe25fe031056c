package entities

// ValidScenarioTypes lists every accepted scenario type.
var ValidScenarioTypes = []ScenarioType{
	ScenarioTypeBudget,
	ScenarioTypeForecast,
	ScenarioTypeWhatIf,
	ScenarioTypeSensitivity,
}

func (t ScenarioType) Valid() bool {
	for _, v := range ValidScenarioTypes {
		if t == v {
			return true
		}
	}
	return false
}

func (s ScenarioStatus) Valid() bool {
	switch s {
	case ScenarioStatusDraft, ScenarioStatusActive, ScenarioStatusApproved, ScenarioStatusArchived:
		return true
	}
	return false
}

// CanTransition reports whether a status update may move a scenario from one
// status to another. Approval is not reachable through this path; it has its
// own operation with its own checks.
func CanTransition(from, to ScenarioStatus) bool {
	if from == to {
		return true
	}
	switch to {
	case ScenarioStatusActive:
		return from == ScenarioStatusDraft
	case ScenarioStatusArchived:
		return from != ScenarioStatusArchived
	}
	return false
}
