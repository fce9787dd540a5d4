package script_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/Adirelle/fuzzlog/pkg/script"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = `{"event":"open_test_case","text":"TC1"}
{"event":"open_test_step","text":"handshake"}
{"event":"send","data":"4142"}
{"event":"recv","data":"0x00ff"}
{"event":"check","text":"banner"}
{"event":"pass"}

{"event":"open_test_case","text":"TC2"}
{"event":"info","text":"multi\nline"}
{"event":"fail","text":"bad"}
{"event":"error","text":"crash"}
`

type failingSink struct {
	fuzzlog.NopSink
}

var errFailing = errors.New("failing sink")

func (failingSink) LogFail(string) error {
	return errFailing
}

func TestReplay(t *testing.T) {
	t.Parallel()
	m := fuzzlog.NewMultiplexer()

	count, err := script.Replay(context.Background(), strings.NewReader(session), m)

	require.NoError(t, err)
	assert.Equal(t, 10, count)
	assert.Equal(t, []fuzzlog.TestCaseID{"TC1", "TC2"}, m.AllTestCases())
	assert.Equal(t, []string{""}, m.Passed().Descriptions("TC1"))
	assert.Equal(t, []string{"bad"}, m.Failed().Descriptions("TC2"))
	assert.Equal(t, []string{"crash"}, m.Errors().Descriptions("TC2"))
}

func TestReplayThroughRecorder(t *testing.T) {
	t.Parallel()
	var recorded bytes.Buffer

	_, err := script.Replay(context.Background(), strings.NewReader(session), script.NewRecorder(&recorded))
	require.NoError(t, err)

	first := fuzzlog.NewMultiplexer()
	_, err = script.Replay(context.Background(), strings.NewReader(session), first)
	require.NoError(t, err)
	second := fuzzlog.NewMultiplexer()
	count, err := script.Replay(context.Background(), &recorded, second)
	require.NoError(t, err)

	assert.Equal(t, 10, count)
	assert.Equal(t, fuzzlog.Summary(first), fuzzlog.Summary(second))
	assert.Equal(t, first.Passed(), second.Passed())
	assert.Equal(t, first.Failed(), second.Failed())
}

// tracingSink records every call it receives as a readable line.
type tracingSink struct {
	calls []string
}

func (s *tracingSink) add(format string, args ...interface{}) error {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	return nil
}

func (s *tracingSink) OpenTestCase(id fuzzlog.TestCaseID) error {
	return s.add("OpenTestCase(%q)", string(id))
}
func (s *tracingSink) OpenTestStep(d string) error { return s.add("OpenTestStep(%q)", d) }
func (s *tracingSink) LogInfo(d string) error      { return s.add("LogInfo(%q)", d) }
func (s *tracingSink) LogCheck(d string) error     { return s.add("LogCheck(%q)", d) }
func (s *tracingSink) LogPass(d string) error      { return s.add("LogPass(%q)", d) }
func (s *tracingSink) LogFail(d string) error      { return s.add("LogFail(%q)", d) }
func (s *tracingSink) LogError(d string) error     { return s.add("LogError(%q)", d) }
func (s *tracingSink) LogRecv(b []byte) error      { return s.add("LogRecv(%x)", b) }
func (s *tracingSink) LogSend(b []byte) error      { return s.add("LogSend(%x)", b) }

func TestReplayMatchesDirectCalls(t *testing.T) {
	t.Parallel()
	direct := &tracingSink{}
	m := fuzzlog.NewMultiplexer(direct)
	require.NoError(t, m.OpenTestCase("TC1"))
	require.NoError(t, m.OpenTestStep("handshake"))
	require.NoError(t, m.LogSend([]byte("AB")))
	require.NoError(t, m.LogRecv([]byte{0x00, 0xff}))
	require.NoError(t, m.LogCheck("banner"))
	require.NoError(t, m.LogPass(""))
	require.NoError(t, m.OpenTestCase("TC2"))
	require.NoError(t, m.LogInfo("multi\nline"))
	require.NoError(t, m.LogFail("bad"))
	require.NoError(t, m.LogError("crash"))

	replayed := &tracingSink{}
	_, err := script.Replay(context.Background(), strings.NewReader(session), fuzzlog.NewMultiplexer(replayed))
	require.NoError(t, err)

	assert.Equal(t, direct.calls, replayed.calls)
}

func TestRecorderOutput(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := script.NewRecorder(&buf)

	require.NoError(t, r.OpenTestCase("TC1"))
	require.NoError(t, r.LogSend([]byte("AB")))
	require.NoError(t, r.LogPass(""))

	assert.Equal(t,
		`{"event":"open_test_case","text":"TC1"}`+"\n"+
			`{"event":"send","data":"4142"}`+"\n"+
			`{"event":"pass"}`+"\n",
		buf.String())
}

func TestReplayStopsOnSinkError(t *testing.T) {
	t.Parallel()

	count, err := script.Replay(context.Background(), strings.NewReader(session), failingSink{})

	assert.Equal(t, 8, count)
	assert.ErrorIs(t, err, errFailing)
	assert.Contains(t, err.Error(), "record #9 (fail)")
}

func TestReplayRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown event": `{"event":"explode"}`,
		"missing event": `{"text":"x"}`,
		"bad hex":       `{"event":"send","data":"zz"}`,
	}
	for name, line := range cases {
		line := line
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			input := `{"event":"info","text":"ok"}` + "\n" + line + "\n"

			count, err := script.Replay(context.Background(), strings.NewReader(input), fuzzlog.NopSink{})

			assert.Equal(t, 1, count)
			var validationErrors validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrors)
			assert.Contains(t, err.Error(), "record #2")
		})
	}
}

func TestReplayRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`{"event":`, `{"event":"info","extra":1}`} {
		count, err := script.Replay(context.Background(), strings.NewReader(input), fuzzlog.NopSink{})

		assert.Zero(t, count)
		assert.Error(t, err, input)
	}
}

func TestReplayOddHexLength(t *testing.T) {
	t.Parallel()

	_, err := script.Replay(context.Background(), strings.NewReader(`{"event":"recv","data":"abc"}`), fuzzlog.NopSink{})

	assert.ErrorContains(t, err, "invalid data")
}

func TestReplayHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := script.Replay(ctx, strings.NewReader(session), fuzzlog.NopSink{})

	assert.Zero(t, count)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApplyUnknownEvent(t *testing.T) {
	t.Parallel()

	err := script.Record{Event: "explode"}.Apply(fuzzlog.NopSink{})

	assert.ErrorIs(t, err, script.ErrUnknownEvent)
}
