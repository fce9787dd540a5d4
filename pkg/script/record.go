package script

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/go-playground/validator/v10"
)

type (
	// Event names one of the nine Sink operations.
	Event string

	// Record is one line of an event script.
	Record struct {
		Event Event  `json:"event" validate:"required,oneof=open_test_case open_test_step info check pass fail error recv send"`
		Text  string `json:"text,omitempty"`
		// Data holds hex-encoded bytes for recv and send.
		Data string `json:"data,omitempty" validate:"omitempty,hexadecimal"`
	}
)

const (
	OpenTestCase Event = "open_test_case"
	OpenTestStep Event = "open_test_step"
	Info         Event = "info"
	Check        Event = "check"
	Pass         Event = "pass"
	Fail         Event = "fail"
	Error        Event = "error"
	Recv         Event = "recv"
	Send         Event = "send"
)

var (
	ErrUnknownEvent = errors.New("unknown event")

	validate = validator.New()
)

func (r Record) Validate() error {
	return validate.Struct(r)
}

// Bytes decodes Data. An optional 0x prefix is accepted.
func (r Record) Bytes() ([]byte, error) {
	data := strings.TrimPrefix(strings.TrimPrefix(r.Data, "0x"), "0X")
	return hex.DecodeString(data)
}

// Apply calls the Sink operation named by the record.
func (r Record) Apply(sink fuzzlog.Sink) error {
	switch r.Event {
	case OpenTestCase:
		return sink.OpenTestCase(fuzzlog.TestCaseID(r.Text))
	case OpenTestStep:
		return sink.OpenTestStep(r.Text)
	case Info:
		return sink.LogInfo(r.Text)
	case Check:
		return sink.LogCheck(r.Text)
	case Pass:
		return sink.LogPass(r.Text)
	case Fail:
		return sink.LogFail(r.Text)
	case Error:
		return sink.LogError(r.Text)
	case Recv, Send:
		data, err := r.Bytes()
		if err != nil {
			return fmt.Errorf("invalid data: %w", err)
		}
		if r.Event == Recv {
			return sink.LogRecv(data)
		}
		return sink.LogSend(data)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, r.Event)
	}
}

func textRecord(event Event, text string) Record {
	return Record{Event: event, Text: text}
}

func dataRecord(event Event, data []byte) Record {
	return Record{Event: event, Data: hex.EncodeToString(data)}
}
