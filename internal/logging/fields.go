package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for run correlation identifiers.
	FieldRunID = "run_id"
	// FieldEventType is the standardized structured logging key categorizing warn and error events.
	FieldEventType = "event_type"
	// FieldErrorHint is the standardized structured logging key carrying operator guidance for failures.
	FieldErrorHint = "error_hint"
	// FieldDecisionType is the standardized structured logging key naming the decision being logged.
	FieldDecisionType = "decision_type"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
)
