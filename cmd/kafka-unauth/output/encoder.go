package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lolocompany/kafka-unauth/pkg"
)

// Encoder writes the scan report in the configured format.
type Encoder struct {
	format Format
	w      io.Writer
}

// NewEncoder returns an encoder that writes to w in the given format.
func NewEncoder(format Format, w io.Writer) *Encoder {
	return &Encoder{format: format, w: w}
}

// EncodeTarget writes the scan banner. JSON output has no banner.
func (e *Encoder) EncodeTarget(t pkg.Target) error {
	if e.format == FormatJSON {
		return nil
	}
	_, err := fmt.Fprintf(e.w, "[*] Checking Kafka for unauthenticated access\n    Kafka broker: %s\n    Web console:  %s\n", t.BrokerAddr(), t.ConsoleURL())
	return err
}

// EncodeResult writes one probe result: a JSON object per line, or a
// block of text.
func (e *Encoder) EncodeResult(r pkg.Result) error {
	if e.format == FormatJSON {
		if err := json.NewEncoder(e.w).Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(e.w, "\n"+Text(r))
	return err
}

// EncodeSummary writes the closing verdict of the scan.
func (e *Encoder) EncodeSummary(report pkg.Report) error {
	var exposed []string
	for _, r := range report.Results {
		if r.Exposed() {
			exposed = append(exposed, string(r.Probe))
		}
	}

	if e.format == FormatJSON {
		summary := struct {
			Summary bool     `json:"summary"`
			Target  string   `json:"target"`
			Exposed []string `json:"exposed"`
		}{true, report.Target.BrokerAddr(), exposed}
		if summary.Exposed == nil {
			summary.Exposed = []string{}
		}
		if err := json.NewEncoder(e.w).Encode(summary); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	if len(exposed) == 0 {
		_, err := fmt.Fprintf(e.w, "\n[=] No unauthenticated access confirmed\n")
		return err
	}
	_, err := fmt.Fprintf(e.w, "\n[=] Unauthenticated access confirmed: %s\n", strings.Join(exposed, ", "))
	return err
}

// Text renders r as human-readable lines.
func Text(r pkg.Result) string {
	var b strings.Builder
	switch r.Probe {
	case pkg.ProbeTopics:
		writeTopics(&b, r)
	case pkg.ProbeConsume:
		writeConsume(&b, r)
	case pkg.ProbeProduce:
		writeProduce(&b, r)
	case pkg.ProbeConsole:
		writeConsole(&b, r)
	default:
		fmt.Fprintf(&b, "[?] %s: %s\n", r.Probe, r.Status)
	}
	return b.String()
}

func writeTopics(b *strings.Builder, r pkg.Result) {
	if r.Status != pkg.StatusSuccess {
		fmt.Fprintf(b, "[-] Cannot list topics, access denied or authentication required: %s\n", r.Error)
		return
	}
	fmt.Fprintf(b, "[+] Topics listed without authentication (%d):\n", len(r.Topics))
	for _, t := range r.Topics {
		fmt.Fprintf(b, "   - %s\n", t)
	}
	if r.TestTopic == "" {
		b.WriteString("[!] No topics found\n")
		return
	}
	fmt.Fprintf(b, "[*] Using the first topic for read/write tests: %s\n", r.TestTopic)
}

func writeConsume(b *strings.Builder, r pkg.Result) {
	switch r.Status {
	case pkg.StatusSkipped:
		fmt.Fprintf(b, "[!] Consume test skipped: %s\n", r.Reason)
	case pkg.StatusFailure:
		fmt.Fprintf(b, "[-] Cannot consume messages: %s\n", r.Error)
	default:
		if r.MessageCount == 0 {
			fmt.Fprintf(b, "[!] Connected to topic %s, but it holds no messages\n", r.TestTopic)
			return
		}
		fmt.Fprintf(b, "[+] Messages consumed without authentication: %d total, showing %d:\n", r.MessageCount, len(r.Samples))
		for _, s := range r.Samples {
			if s.Binary {
				fmt.Fprintf(b, "   [message %d] [binary / cannot decode]\n", s.Index)
				continue
			}
			fmt.Fprintf(b, "   [message %d] %s\n", s.Index, s.Text)
		}
	}
}

func writeProduce(b *strings.Builder, r pkg.Result) {
	switch r.Status {
	case pkg.StatusSkipped:
		fmt.Fprintf(b, "[!] Produce test skipped: %s\n", r.Reason)
	case pkg.StatusFailure:
		fmt.Fprintf(b, "[-] Cannot produce messages: %s\n", r.Error)
	default:
		fmt.Fprintf(b, "[+] Message produced without authentication: topic %s [partition %d, offset %d]\n",
			r.Written.Topic, r.Written.Partition, r.Written.Offset)
		fmt.Fprintf(b, "    Body: %s\n", r.Marker)
	}
}

func writeConsole(b *strings.Builder, r pkg.Result) {
	switch r.Status {
	case pkg.StatusExposed:
		fmt.Fprintf(b, "[+] Web console reachable without authentication (status %d)\n", r.StatusCode)
		fmt.Fprintf(b, "    URL: %s\n", r.URL)
		b.WriteString("    Topic and consumer group data may be exposed\n")
	case pkg.StatusProtected:
		fmt.Fprintf(b, "[-] Web console returned status %d, likely absent or requires authentication\n", r.StatusCode)
	default:
		fmt.Fprintf(b, "[-] Web console unreachable, likely closed or filtered: %s\n", r.Error)
	}
}
