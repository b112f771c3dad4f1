package response

// NextDTO carries one answer from the respondent runtime.
type NextDTO struct {
	Answer any `json:"answer"`
}

// AnalyticsDTO compares the trailing 7-day window against the 7 days before
// it. Delta is a percentage; nil when the previous window is empty.
type AnalyticsDTO struct {
	Views          int64    `json:"views"`
	PrevViews      int64    `json:"prev_views"`
	ViewsDelta     *float64 `json:"views_delta"`
	Responses      int64    `json:"responses"`
	PrevResponses  int64    `json:"prev_responses"`
	ResponsesDelta *float64 `json:"responses_delta"`
}
