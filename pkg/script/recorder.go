package script

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
)

// Recorder is a Sink that writes every event it receives as a script
// record, one JSON object per line.
type Recorder struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

var _ fuzzlog.Sink = (*Recorder)(nil)

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{encoder: json.NewEncoder(w)}
}

func (r *Recorder) write(record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.encoder.Encode(record)
}

func (r *Recorder) OpenTestCase(id fuzzlog.TestCaseID) error {
	return r.write(textRecord(OpenTestCase, string(id)))
}

func (r *Recorder) OpenTestStep(description string) error {
	return r.write(textRecord(OpenTestStep, description))
}

func (r *Recorder) LogInfo(description string) error {
	return r.write(textRecord(Info, description))
}

func (r *Recorder) LogCheck(description string) error {
	return r.write(textRecord(Check, description))
}

func (r *Recorder) LogPass(description string) error {
	return r.write(textRecord(Pass, description))
}

func (r *Recorder) LogFail(description string) error {
	return r.write(textRecord(Fail, description))
}

func (r *Recorder) LogError(description string) error {
	return r.write(textRecord(Error, description))
}

func (r *Recorder) LogRecv(data []byte) error {
	return r.write(dataRecord(Recv, data))
}

func (r *Recorder) LogSend(data []byte) error {
	return r.write(dataRecord(Send, data))
}
