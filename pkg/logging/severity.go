package logging

// Severity represents log levels, ordered from fully suppressed to fully
// verbose. The ordering is load-bearing: a message passes the gate only
// when the configured threshold is at least as large as its level.
type Severity int32

const (
	DISABLED Severity = iota
	CRITICAL
	ERROR
	WARNING
	INFO
	DEBUG
	ENABLED
)

// severityNames is index-aligned with the Severity constants. It is the
// only table consulted when resolving a configured level name.
var severityNames = [...]string{
	"DISABLED",
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
	"ENABLED",
}

// String provides the human-readable severity name.
func (s Severity) String() string {
	if s < DISABLED || s > ENABLED {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// ParseSeverity converts a configured level name to a Severity. Matching
// is case-sensitive; unrecognized names fail closed to DISABLED so a
// misconfigured deployment under-logs rather than over-logs.
func ParseSeverity(name string) Severity {
	for i, n := range severityNames {
		if n == name {
			return Severity(i)
		}
	}
	return DISABLED
}

// SyslogPriority returns the syslog-style priority digit attached to each
// emitted line, consumed by downstream log collection.
//
// Note, DEBUG here is actually mapped to the info priority, because the
// deployment's log store caps retained verbosity at info, so a debug
// priority would never be stored.
func (s Severity) SyslogPriority() int {
	switch s {
	case CRITICAL:
		return 2
	case ERROR:
		return 3
	case WARNING:
		return 4
	case INFO:
		return 6
	case DEBUG:
		return 6
	default:
		// Unknown severity. Just assume the least alarming priority.
		return 6
	}
}
