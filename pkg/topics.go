package pkg

import (
	"context"
)

// TopicLister lists topics without credentials.
type TopicLister interface {
	ListTopics(ctx context.Context) ([]string, error)
}

// CheckTopics lists the broker's topics. Any successful response counts as
// exposure, even an empty one; the first topic becomes the test topic.
func CheckTopics(ctx context.Context, lister TopicLister) Result {
	topics, err := lister.ListTopics(ctx)
	if err != nil {
		return failed(ProbeTopics, err)
	}

	res := Result{
		Probe:  ProbeTopics,
		Status: StatusSuccess,
		Topics: topics,
	}
	if len(topics) > 0 {
		res.TestTopic = topics[0]
	}
	return res
}
