package logsink

import (
	"encoding/hex"
	"sync"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/apex/log"
)

// Sink forwards events to an apex/log logger as structured entries.
type Sink struct {
	logger log.Interface

	mu       sync.Mutex
	testCase fuzzlog.TestCaseID
}

var _ fuzzlog.Sink = (*Sink)(nil)

// New creates a Sink logging to logger, or to the process logger if logger is nil.
func New(logger log.Interface) *Sink {
	if logger == nil {
		logger = log.Log
	}
	return &Sink{logger: logger}
}

func (s *Sink) OpenTestCase(id fuzzlog.TestCaseID) error {
	s.mu.Lock()
	s.testCase = id
	s.mu.Unlock()
	s.entry().Info("test_case.open")
	return nil
}

func (s *Sink) OpenTestStep(description string) error {
	s.described(description).Info("test_step.open")
	return nil
}

func (s *Sink) LogInfo(description string) error {
	s.described(description).Info("info")
	return nil
}

func (s *Sink) LogCheck(description string) error {
	s.described(description).Debug("check")
	return nil
}

func (s *Sink) LogPass(description string) error {
	s.described(description).Info("check.pass")
	return nil
}

func (s *Sink) LogFail(description string) error {
	s.described(description).Warn("check.fail")
	return nil
}

func (s *Sink) LogError(description string) error {
	s.described(description).Error("error")
	return nil
}

func (s *Sink) LogRecv(data []byte) error {
	s.withData(data).Debug("recv")
	return nil
}

func (s *Sink) LogSend(data []byte) error {
	s.withData(data).Debug("send")
	return nil
}

func (s *Sink) entry() *log.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logger.WithField("test_case", s.testCase)
}

func (s *Sink) described(description string) *log.Entry {
	return s.entry().WithField("description", description)
}

func (s *Sink) withData(data []byte) *log.Entry {
	return s.entry().WithFields(log.Fields{
		"bytes": len(data),
		"data":  hex.EncodeToString(data),
	})
}
