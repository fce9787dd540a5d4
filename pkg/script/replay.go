package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Adirelle/fuzzlog/pkg/fuzzlog"
	"github.com/apex/log"
)

// Replay decodes records from r and applies them to sink, in order.
// It stops at the first decoding, validation or sink error and returns the
// number of records applied so far.
func Replay(ctx context.Context, r io.Reader, sink fuzzlog.Sink) (count int, err error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	for {
		if err = ctx.Err(); err != nil {
			return
		}

		var record Record
		if err = decoder.Decode(&record); errors.Is(err, io.EOF) {
			err = nil
			break
		} else if err != nil {
			return count, fmt.Errorf("record #%d: %w", count+1, err)
		}

		if err = record.Validate(); err != nil {
			return count, fmt.Errorf("record #%d: %w", count+1, err)
		}
		if err = record.Apply(sink); err != nil {
			return count, fmt.Errorf("record #%d (%s): %w", count+1, record.Event, err)
		}
		count++
	}

	log.WithField("records", count).Debug("script.replayed")
	return
}
