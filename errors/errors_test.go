package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	e := Register(55555, "custom")
	assert.Equal(t, uint32(55555), e.ABCICode())
	assert.Equal(t, "custom", e.Error())

	assert.Panics(t, func() {
		Register(55555, "duplicate")
	})
	// code 1 is reserved for non-registered errors
	assert.Panics(t, func() {
		Register(1, "internal")
	})
}

func TestABCICode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want uint32
	}{
		"nil is a success":   {err: nil, want: 0},
		"registered root":    {err: ErrNotFound, want: 3},
		"wrapped once":       {err: Wrap(ErrNotFound, "gone"), want: 3},
		"wrapped twice":      {err: Wrap(Wrap(ErrUnauthorized, "a"), "b"), want: 2},
		"stdlib error":       {err: stderrors.New("boom"), want: 1},
		"wrapped stdlib":     {err: Wrap(stderrors.New("boom"), "ctx"), want: 1},
		"formatted new":      {err: ErrState.Newf("state %d", 42), want: 10},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ABCICode(tc.err))
		})
	}
}

func TestIs(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "gone")
	assert.True(t, ErrNotFound.Is(wrapped))
	assert.True(t, ErrNotFound.Is(ErrNotFound))
	assert.False(t, ErrNotFound.Is(ErrUnauthorized))
	assert.False(t, ErrNotFound.Is(stderrors.New("boom")))
	assert.False(t, ErrNotFound.Is(nil))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "no error"))
	assert.Nil(t, Wrapf(nil, "no %s", "error"))
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "outer")
	assert.Equal(t, "outer: not found", err.Error())

	err = Wrapf(ErrNotFound, "id %d", 7)
	assert.Equal(t, "id 7: not found", err.Error())
}

func TestAppend(t *testing.T) {
	assert.Nil(t, Append())
	assert.Nil(t, Append(nil, nil))

	single := Wrap(ErrNotFound, "gone")
	assert.Equal(t, single, Append(nil, single))

	multi := Append(ErrNotFound, ErrUnauthorized)
	require.Error(t, multi)
	// the first error decides code and cause
	assert.Equal(t, uint32(3), ABCICode(multi))
	assert.True(t, ErrNotFound.Is(multi))

	// nested multi errors are flattened
	flat := Append(multi, ErrState)
	assert.Equal(t, uint32(3), ABCICode(flat))
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("broken")
	}
	err := fail()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
	assert.Equal(t, ErrPanic.ABCICode(), ABCICode(err))
}
