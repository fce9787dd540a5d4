package textsink

import (
	"encoding/hex"
	"strings"
	"time"
)

type (
	// BytesRenderer turns raw sent or received data into printable text.
	BytesRenderer func(data []byte) string
)

// TimestampLayout renders local time with millisecond precision.
// Milliseconds are truncated, never rounded up.
const TimestampLayout = "[2006-01-02 15:04:05,000]"

var _ BytesRenderer = HexBytes

// HexBytes renders data as contiguous lowercase hex followed by a quoted,
// best-effort UTF-8 rendering of the same bytes.
func HexBytes(data []byte) string {
	return hex.EncodeToString(data) + " '" + strings.ToValidUTF8(string(data), "�") + "'"
}

// Timestamp formats when in the local time zone using TimestampLayout.
func Timestamp(when time.Time) string {
	return when.Local().Format(TimestampLayout)
}

func indentAllLines(lines string, amount int) string {
	padding := strings.Repeat(" ", amount)
	return padding + strings.ReplaceAll(lines, "\n", "\n"+padding)
}

func indentAfterFirstLine(lines string, amount int) string {
	return strings.ReplaceAll(lines, "\n", "\n"+strings.Repeat(" ", amount))
}
