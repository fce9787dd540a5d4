package textsink_test

import (
	"testing"
	"time"

	"github.com/Adirelle/fuzzlog/pkg/textsink"
	"github.com/stretchr/testify/assert"
)

func TestHexBytes(t *testing.T) {
	t.Parallel()

	rendered := textsink.HexBytes([]byte{0x41, 0x42})

	assert.Contains(t, rendered, "4142")
	assert.Contains(t, rendered, "AB")
	assert.Equal(t, "4142 'AB'", rendered)
}

func TestHexBytesInvalidUTF8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "41ff42 'A�B'", textsink.HexBytes([]byte{0x41, 0xff, 0x42}))
	assert.Equal(t, " ''", textsink.HexBytes(nil))
}

func TestTimestamp(t *testing.T) {
	t.Parallel()
	when := time.Date(2024, time.March, 5, 7, 8, 9, 999_999_999, time.Local)

	stamp := textsink.Timestamp(when)

	assert.Equal(t, "[2024-03-05 07:08:09,999]", stamp)
	assert.Len(t, stamp, 25)
}

func TestTimestampPadsMilliseconds(t *testing.T) {
	t.Parallel()
	when := time.Date(2024, time.December, 31, 23, 59, 59, 7_000_000, time.Local)

	assert.Equal(t, "[2024-12-31 23:59:59,007]", textsink.Timestamp(when))
}
