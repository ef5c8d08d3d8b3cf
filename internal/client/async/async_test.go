package async

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/snsclone/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorder(g *Gateway) *[]Event {
	var got []Event
	g.Observe(func(e Event) { got = append(got, e) })
	return &got
}

func phases(evs []Event) []Phase {
	out := make([]Phase, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Phase)
	}
	return out
}

func TestDo_FulfilledCommitsBeforeEvent(t *testing.T) {
	g := NewGateway(logging.NewDiscardLogger())
	events := recorder(g)

	var committed int
	var committedBeforeFulfilled bool
	g.Observe(func(e Event) {
		if e.Phase == Fulfilled {
			committedBeforeFulfilled = committed == 5
		}
	})

	res := Do(context.Background(), g, "posts/fetch",
		func(context.Context) (int, error) { return 5, nil },
		func(v int) { committed = v })

	require.True(t, res.Fulfilled())
	assert.Equal(t, 5, res.Value)
	assert.Equal(t, 5, committed)
	assert.True(t, committedBeforeFulfilled)
	assert.Equal(t, []Phase{Pending, Fulfilled}, phases(*events))
	assert.Equal(t, "posts/fetch", (*events)[1].Op)
}

func TestDo_RejectedDoesNotCommit(t *testing.T) {
	g := NewGateway(logging.NewDiscardLogger())
	events := recorder(g)
	boom := errors.New("boom")

	called := false
	res := Do(context.Background(), g, "posts/create",
		func(context.Context) (string, error) { return "partial", boom },
		func(string) { called = true })

	require.True(t, res.Rejected())
	assert.ErrorIs(t, res.Err, boom)
	assert.Empty(t, res.Value)
	assert.False(t, called)
	assert.Equal(t, []Phase{Pending, Rejected}, phases(*events))
	assert.ErrorIs(t, (*events)[1].Err, boom)
}

func TestDo_NilCommit(t *testing.T) {
	g := NewGateway(logging.NewDiscardLogger())

	v, err := Do(context.Background(), g, "auth/login",
		func(context.Context) (string, error) { return "tok", nil }, nil).Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestDo_CancelledContextRejects(t *testing.T) {
	g := NewGateway(logging.NewDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	res := Do(ctx, g, "op", func(context.Context) (int, error) {
		called = true
		return 1, nil
	}, nil)

	assert.False(t, called)
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "fulfilled", Fulfilled.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
