package enrich

// ConfigError reports contradictory or missing configuration detected before
// sampling begins.  Local, recoverable input problems (malformed rows,
// unplaceable intervals) are absorbed elsewhere; a ConfigError always aborts
// the run.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "enrich: invalid configuration: " + e.Reason
}
