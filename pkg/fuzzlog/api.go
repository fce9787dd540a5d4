package fuzzlog

type (
	// TestCaseID identifies a test case. The harness supplies it; it need not be unique within a run.
	TestCaseID string

	// Sink receives every event forwarded by a Multiplexer.
	Sink interface {
		OpenTestCase(id TestCaseID) error
		OpenTestStep(description string) error
		LogInfo(description string) error
		LogCheck(description string) error
		LogPass(description string) error
		LogFail(description string) error
		LogError(description string) error
		LogRecv(data []byte) error
		LogSend(data []byte) error
	}

	// NopSink accepts and discards every event. Embed it to implement only part of Sink.
	NopSink struct{}
)

// DefaultTestCase is the id events are recorded under before any OpenTestCase call.
const DefaultTestCase TestCaseID = ""

var (
	// Interface checks
	_ Sink = NopSink{}
	_ Sink = (*Multiplexer)(nil)
)

func (id TestCaseID) String() string {
	return string(id)
}

func (NopSink) OpenTestCase(TestCaseID) error { return nil }
func (NopSink) OpenTestStep(string) error     { return nil }
func (NopSink) LogInfo(string) error          { return nil }
func (NopSink) LogCheck(string) error         { return nil }
func (NopSink) LogPass(string) error          { return nil }
func (NopSink) LogFail(string) error          { return nil }
func (NopSink) LogError(string) error         { return nil }
func (NopSink) LogRecv([]byte) error          { return nil }
func (NopSink) LogSend([]byte) error          { return nil }
