package fuzzlog

import (
	"fmt"
	"sync"

	"github.com/apex/log"
	"golang.org/x/exp/slices"
)

// Multiplexer forwards each event to its sinks, in registration order, and
// keeps pass/fail/error outcomes per test case.
//
// A sink error aborts the fan-out of the current event: sinks registered
// after the failing one do not see it. The outcome, if any, is already
// recorded at that point.
//
// Each event, including its fan-out, runs under a lock. Sinks must not call
// back into the Multiplexer that feeds them.
type Multiplexer struct {
	mu    sync.Mutex
	sinks []Sink

	current TestCaseID
	all     []TestCaseID
	passed  Outcomes
	failed  Outcomes
	errored Outcomes
}

func NewMultiplexer(sinks ...Sink) *Multiplexer {
	return &Multiplexer{sinks: slices.Clone(sinks)}
}

// AddSink registers a sink after the existing ones.
func (m *Multiplexer) AddSink(sink Sink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinks = append(m.sinks, sink)
}

func (m *Multiplexer) OpenTestCase(id TestCaseID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = id
	m.all = append(m.all, id)
	log.WithField("test_case", id).WithField("count", len(m.all)).Debug("fuzzlog.test_case.open")
	return m.dispatch(func(s Sink) error { return s.OpenTestCase(id) })
}

func (m *Multiplexer) OpenTestStep(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatch(func(s Sink) error { return s.OpenTestStep(description) })
}

func (m *Multiplexer) LogInfo(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatch(func(s Sink) error { return s.LogInfo(description) })
}

func (m *Multiplexer) LogCheck(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatch(func(s Sink) error { return s.LogCheck(description) })
}

func (m *Multiplexer) LogPass(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passed.add(m.current, description)
	return m.dispatch(func(s Sink) error { return s.LogPass(description) })
}

func (m *Multiplexer) LogFail(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed.add(m.current, description)
	return m.dispatch(func(s Sink) error { return s.LogFail(description) })
}

// LogError records an exceptional condition, such as an unresponsive target.
// Unlike failures, errors are not assertions about the target's output.
// As with LogPass and LogFail, an empty description is accepted.
func (m *Multiplexer) LogError(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errored.add(m.current, description)
	return m.dispatch(func(s Sink) error { return s.LogError(description) })
}

func (m *Multiplexer) LogRecv(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatch(func(s Sink) error { return s.LogRecv(data) })
}

func (m *Multiplexer) LogSend(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatch(func(s Sink) error { return s.LogSend(data) })
}

func (m *Multiplexer) dispatch(call func(Sink) error) error {
	for i, sink := range m.sinks {
		if err := call(sink); err != nil {
			return fmt.Errorf("sink #%d: %w", i, err)
		}
	}
	return nil
}

// CurrentTestCase returns the id of the last opened test case.
func (m *Multiplexer) CurrentTestCase() TestCaseID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// AllTestCases returns every opened id in call order, repeats included.
func (m *Multiplexer) AllTestCases() []TestCaseID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.all)
}

func (m *Multiplexer) Passed() Outcomes {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.passed.clone()
}

func (m *Multiplexer) Failed() Outcomes {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failed.clone()
}

func (m *Multiplexer) Errors() Outcomes {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errored.clone()
}
