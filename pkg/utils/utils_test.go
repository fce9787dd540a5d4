package utils_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/Adirelle/fuzzlog/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithTimeout(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 1)

	require.NoError(t, utils.SendWithTimeout[int](ch, 1, time.Millisecond))
	assert.ErrorIs(t, utils.SendWithTimeout[int](ch, 2, time.Millisecond), context.DeadlineExceeded)
	assert.Equal(t, 1, <-ch)
}

func TestRecvWithContext(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 1)
	ch <- 5

	value, err := utils.RecvWithContext[int](context.Background(), ch)
	require.NoError(t, err)
	assert.Equal(t, 5, value)

	close(ch)
	_, err = utils.RecvWithContext[int](context.Background(), ch)
	assert.ErrorIs(t, err, utils.ErrChannelClosed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = utils.RecvWithContext[int](ctx, make(chan int))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapSlice(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"1", "2"}, utils.MapSlice([]int{1, 2}, strconv.Itoa))
	assert.Empty(t, utils.MapSlice(nil, strconv.Itoa))
}

func TestSecret(t *testing.T) {
	t.Parallel()
	s := utils.Secret("hunter2")

	assert.Equal(t, "<secret>", fmt.Sprintf("%v", s))
	assert.Equal(t, "<secret>", fmt.Sprintf("%#v", s))
	assert.Equal(t, "hunter2", s.Reveal())

	encoded, err := json.Marshal(struct{ Token utils.Secret }{s})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Token":"hunter2"}`, string(encoded))

	var nilSecret *utils.Secret
	assert.Empty(t, nilSecret.Reveal())
}
