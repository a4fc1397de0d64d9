package pkg

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lolocompany/kafka-unauth/pkg/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTopics(t *testing.T) {
	t.Run("first topic becomes test topic", func(t *testing.T) {
		res := CheckTopics(context.Background(), &fakeClient{topics: []string{"orders", "payments"}})

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, []string{"orders", "payments"}, res.Topics)
		assert.Equal(t, "orders", res.TestTopic)
		assert.True(t, res.Exposed())
	})

	t.Run("empty list is still a success", func(t *testing.T) {
		res := CheckTopics(context.Background(), &fakeClient{})

		assert.Equal(t, StatusSuccess, res.Status)
		assert.Empty(t, res.Topics)
		assert.Empty(t, res.TestTopic)
	})

	t.Run("error leaves test topic unset", func(t *testing.T) {
		res := CheckTopics(context.Background(), &fakeClient{topicsErr: errors.New("SASL authentication required")})

		assert.Equal(t, StatusFailure, res.Status)
		assert.Contains(t, res.Error, "SASL")
		assert.Empty(t, res.TestTopic)
		assert.False(t, res.Exposed())
	})
}

func TestCheckConsumeSkippedWithoutTopic(t *testing.T) {
	client := &fakeClient{}
	res := CheckConsume(context.Background(), ConsumeConfig{Consumer: client})

	assert.Equal(t, StatusSkipped, res.Status)
	assert.Zero(t, client.consumeCalls)
}

func TestCheckConsumeCountsAllAndKeepsFirstThree(t *testing.T) {
	client := &fakeClient{messages: map[string][][]byte{
		"orders": {[]byte("m1"), []byte("m2"), []byte("m3"), []byte("m4"), []byte("m5")},
	}}
	reporter := &countingReporter{}

	res := CheckConsume(context.Background(), ConsumeConfig{
		Consumer:         client,
		Topic:            "orders",
		DisplayLimit:     DefaultDisplayLimit,
		ProgressReporter: reporter,
	})

	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 5, res.MessageCount)
	require.Len(t, res.Samples, DefaultDisplayLimit)
	assert.Equal(t, Sample{Index: 1, Text: "m1"}, res.Samples[0])
	assert.Equal(t, Sample{Index: 3, Text: "m3"}, res.Samples[2])
	assert.Equal(t, DefaultIdleTimeout, client.idleSeen)
	assert.EqualValues(t, 5, reporter.added)
	assert.True(t, reporter.closed)
}

func TestCheckConsumeDisplayLimit(t *testing.T) {
	client := &fakeClient{messages: map[string][][]byte{"t": {[]byte("a"), []byte("b")}}}

	res := CheckConsume(context.Background(), ConsumeConfig{Consumer: client, Topic: "t", DisplayLimit: 1})
	assert.Equal(t, 2, res.MessageCount)
	assert.Len(t, res.Samples, 1)

	res = CheckConsume(context.Background(), ConsumeConfig{Consumer: client, Topic: "t", DisplayLimit: 0})
	assert.Equal(t, 2, res.MessageCount)
	assert.Empty(t, res.Samples)
}

func TestCheckConsumeMarksUndecodableBodies(t *testing.T) {
	client := &fakeClient{messages: map[string][][]byte{
		"bin": {{0xff, 0xfe, 0x00}, []byte("héllo")},
	}}

	res := CheckConsume(context.Background(), ConsumeConfig{Consumer: client, Topic: "bin"})

	require.Equal(t, StatusSuccess, res.Status)
	require.Len(t, res.Samples, 2)
	assert.True(t, res.Samples[0].Binary)
	assert.Empty(t, res.Samples[0].Text)
	assert.False(t, res.Samples[1].Binary)
	assert.Equal(t, "héllo", res.Samples[1].Text)
}

func TestCheckConsumeEmptyTopic(t *testing.T) {
	res := CheckConsume(context.Background(), ConsumeConfig{Consumer: &fakeClient{}, Topic: "empty"})

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Zero(t, res.MessageCount)
	assert.Empty(t, res.Samples)
}

func TestCheckConsumeFailure(t *testing.T) {
	client := &fakeClient{consumeErr: errors.New("TOPIC_AUTHORIZATION_FAILED")}

	res := CheckConsume(context.Background(), ConsumeConfig{Consumer: client, Topic: "orders", IdleTimeout: time.Second})

	assert.Equal(t, StatusFailure, res.Status)
	assert.Contains(t, res.Error, "TOPIC_AUTHORIZATION_FAILED")
	assert.Equal(t, time.Second, client.idleSeen)
}

func TestCheckProduce(t *testing.T) {
	now := time.Unix(1700000000, 0)
	clock := TimeProviderFunc(func() time.Time { return now })

	t.Run("skipped without topic", func(t *testing.T) {
		client := &fakeClient{}
		res := CheckProduce(context.Background(), ProduceConfig{Producer: client})

		assert.Equal(t, StatusSkipped, res.Status)
		assert.Zero(t, client.produceCalls)
	})

	t.Run("acknowledged", func(t *testing.T) {
		client := &fakeClient{ack: kafka.Ack{Topic: "orders", Partition: 2, Offset: 41}}
		res := CheckProduce(context.Background(), ProduceConfig{Producer: client, Topic: "orders", TimeProvider: clock})

		require.Equal(t, StatusSuccess, res.Status)
		assert.Equal(t, "kafka-unauth test message 1700000000", res.Marker)
		assert.Equal(t, &Written{Topic: "orders", Partition: 2, Offset: 41}, res.Written)
		require.Len(t, client.produced, 1)
		assert.Equal(t, res.Marker, string(client.produced[0]))
	})

	t.Run("send error", func(t *testing.T) {
		client := &fakeClient{produceErr: errors.New("not authorized")}
		res := CheckProduce(context.Background(), ProduceConfig{Producer: client, Topic: "orders", TimeProvider: clock})

		assert.Equal(t, StatusFailure, res.Status)
		assert.Nil(t, res.Written)
		assert.Contains(t, res.Error, "not authorized")
	})

	t.Run("ack timeout", func(t *testing.T) {
		client := &fakeClient{waitForCtx: true}
		start := time.Now()
		res := CheckProduce(context.Background(), ProduceConfig{
			Producer:   client,
			Topic:      "orders",
			AckTimeout: 50 * time.Millisecond,
		})

		assert.Equal(t, StatusFailure, res.Status)
		assert.Contains(t, res.Error, context.DeadlineExceeded.Error())
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestMarkerDiffersAcrossRuns(t *testing.T) {
	a := Marker(time.Unix(100, 0))
	b := Marker(time.Unix(101, 0))

	assert.True(t, strings.HasPrefix(a, MarkerPrefix))
	assert.NotEqual(t, a, b)
}

func TestCheckConsole(t *testing.T) {
	t.Run("200 is exposed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte("<html>console</html>"))
		}))
		defer srv.Close()

		res := CheckConsole(context.Background(), ConsoleConfig{URL: srv.URL})
		assert.Equal(t, StatusExposed, res.Status)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, srv.URL, res.URL)
		assert.True(t, res.Exposed())
	})

	t.Run("other status is protected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		res := CheckConsole(context.Background(), ConsoleConfig{URL: srv.URL})
		assert.Equal(t, StatusProtected, res.Status)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Empty(t, res.Error)
		assert.False(t, res.Exposed())
	})

	t.Run("connection error is unreachable", func(t *testing.T) {
		res := CheckConsole(context.Background(), ConsoleConfig{URL: "http://" + closedAddr(t)})
		assert.Equal(t, StatusUnreachable, res.Status)
		assert.Zero(t, res.StatusCode)
		assert.NotEmpty(t, res.Error)
	})

	t.Run("timeout is unreachable", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		res := CheckConsole(context.Background(), ConsoleConfig{URL: srv.URL, Timeout: 50 * time.Millisecond})
		assert.Equal(t, StatusUnreachable, res.Status)
	})
}

// closedAddr returns a loopback address nothing listens on.
func closedAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}
