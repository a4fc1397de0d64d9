package pkg

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultKafkaPort = 9092
	DefaultWebPort   = 9090
)

// Target is the broker and console pair under test.
type Target struct {
	KafkaHost string `json:"kafka_host"`
	KafkaPort int    `json:"kafka_port"`
	WebHost   string `json:"web_host"`
	WebPort   int    `json:"web_port"`
}

// NewTarget fills in defaults: the console host falls back to the broker
// host, and zero ports become DefaultKafkaPort and DefaultWebPort.
// Host format and port range are left for the network layer to reject.
func NewTarget(kafkaHost string, kafkaPort int, webHost string, webPort int) (Target, error) {
	if kafkaHost == "" {
		return Target{}, fmt.Errorf("kafka host is required")
	}
	if kafkaPort == 0 {
		kafkaPort = DefaultKafkaPort
	}
	if webHost == "" {
		webHost = kafkaHost
	}
	if webPort == 0 {
		webPort = DefaultWebPort
	}
	return Target{
		KafkaHost: kafkaHost,
		KafkaPort: kafkaPort,
		WebHost:   webHost,
		WebPort:   webPort,
	}, nil
}

// BrokerAddr returns host:port for the Kafka client.
func (t Target) BrokerAddr() string {
	return net.JoinHostPort(t.KafkaHost, strconv.Itoa(t.KafkaPort))
}

// ConsoleURL returns the plain-HTTP console address.
func (t Target) ConsoleURL() string {
	return "http://" + net.JoinHostPort(t.WebHost, strconv.Itoa(t.WebPort))
}
