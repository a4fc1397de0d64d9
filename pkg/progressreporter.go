package pkg

// ProgressReporter reports progress updates. The consume probe calls Add once
// per drained message and Close when the topic is drained.
type ProgressReporter interface {
	Add(delta int64)
	Close() error
}
