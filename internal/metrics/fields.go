package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrReason   = "reason"
)

// Halt reasons attached to refresh_halts_total.
const (
	HaltReasonFetchFailed = "fetch_failed"
	HaltReasonStale       = "stale"
)
