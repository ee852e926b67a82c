package model

// RenderCallInput is what the output service needs to print one channel call.
type RenderCallInput struct {
	Channel string
	Method  string
	Value   string
	Err     *CallError
}

// CallReportJSON is the JSON document printed for one channel call.
type CallReportJSON struct {
	Channel string     `json:"channel"`
	Method  string     `json:"method"`
	Result  string     `json:"result,omitempty"`
	Error   *CallError `json:"error,omitempty"`
}
