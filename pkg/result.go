package pkg

// Probe identifies one of the four checks.
type Probe string

const (
	ProbeTopics  Probe = "topics"
	ProbeConsume Probe = "consume"
	ProbeProduce Probe = "produce"
	ProbeConsole Probe = "console"
)

// Status is the outcome of a probe. The console probe reports one of
// StatusExposed, StatusProtected or StatusUnreachable; the Kafka probes
// report StatusSuccess, StatusFailure or StatusSkipped.
type Status string

const (
	StatusSuccess     Status = "success"
	StatusFailure     Status = "failure"
	StatusSkipped     Status = "skipped"
	StatusExposed     Status = "exposed"
	StatusProtected   Status = "protected"
	StatusUnreachable Status = "unreachable"
)

// Sample is one displayed message body.
type Sample struct {
	Index  int    `json:"index"`
	Text   string `json:"text,omitempty"`
	Binary bool   `json:"binary,omitempty"`
}

// Written locates a produced message.
type Written struct {
	Topic     string `json:"topic"`
	Partition int    `json:"partition"`
	Offset    int64  `json:"offset"`
}

// Result is the typed outcome of a single probe.
type Result struct {
	Probe  Probe  `json:"probe"`
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"` // why a probe was skipped

	// topics
	Topics    []string `json:"topics,omitempty"`
	TestTopic string   `json:"test_topic,omitempty"`

	// consume
	MessageCount int      `json:"message_count,omitempty"`
	Samples      []Sample `json:"samples,omitempty"`

	// produce
	Marker  string   `json:"marker,omitempty"`
	Written *Written `json:"written,omitempty"`

	// console
	URL        string `json:"url,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// Exposed reports whether the result demonstrates unauthenticated access.
func (r Result) Exposed() bool {
	return r.Status == StatusSuccess || r.Status == StatusExposed
}

func skipped(p Probe, reason string) Result {
	return Result{Probe: p, Status: StatusSkipped, Reason: reason}
}

func failed(p Probe, err error) Result {
	return Result{Probe: p, Status: StatusFailure, Error: err.Error()}
}

// Report holds the results of one scan in execution order.
type Report struct {
	Target  Target   `json:"target"`
	Results []Result `json:"results"`
}

// Exposed reports whether any probe demonstrated unauthenticated access.
func (r Report) Exposed() bool {
	for _, res := range r.Results {
		if res.Exposed() {
			return true
		}
	}
	return false
}

// Result returns the result of probe p, if it ran.
func (r Report) Result(p Probe) (Result, bool) {
	for _, res := range r.Results {
		if res.Probe == p {
			return res, true
		}
	}
	return Result{}, false
}
