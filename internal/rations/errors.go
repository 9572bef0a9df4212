package rations

import "fmt"

// MalformedRecordError reports a raw input record lacking a required field.
// Ingestion of the affected data set must abort rather than silently skip the
// record, since skipping would corrupt the fixed date-domain assumption.
type MalformedRecordError struct {
	Table    string
	Index    int
	RecordID string
	Field    string
	Detail   string
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("malformed record %d in %q (id %s): field %q", e.Index, e.Table, e.RecordID, e.Field)
	if e.Detail != "" {
		return msg + ": " + e.Detail
	}
	return msg + " is missing"
}

// ConfigurationError reports an unsupported unit/strategy/window combination.
// It is signaled before any computation begins.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}
