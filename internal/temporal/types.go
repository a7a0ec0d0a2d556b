package temporal

// SourceTemporalResolver is the provenance tag stamped on every instant this
// package grounds. Nothing else may use it.
const SourceTemporalResolver = "temporal_resolver"

// Resolution is the outcome of grounding a time expression. TargetTimeISO and
// SourceOfTime are both nil when nothing could be grounded.
type Resolution struct {
	ResolvedText  string  `json:"resolved_text"`
	TargetTimeISO *string `json:"target_time_iso"`
	SourceOfTime  *string `json:"source_of_time"`
}

// Grounded reports whether an instant was resolved.
func (r Resolution) Grounded() bool {
	return r.TargetTimeISO != nil
}
