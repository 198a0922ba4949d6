package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nycschools/internal/result"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return "code " + strconv.Itoa(e.code) }

func TestThen_ShortCircuitsOnFailure(t *testing.T) {
	called := false
	r := result.Then(result.Fail[int](&codeError{code: 1}), func(v int) result.Result[string, *codeError] {
		called = true
		return result.Ok[string, *codeError]("x")
	})

	assert.False(t, called)
	err, failed := r.Err()
	require.True(t, failed)
	assert.Equal(t, 1, err.code)
}

func TestThen_ChainsValues(t *testing.T) {
	r := result.Then(result.Ok[int, *codeError](21), func(v int) result.Result[int, *codeError] {
		return result.Ok[int, *codeError](v * 2)
	})
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestMapAndFold(t *testing.T) {
	ok := result.Map(result.Ok[int, *codeError](7), strconv.Itoa)
	assert.Equal(t, "7!", result.Fold(ok,
		func(e *codeError) string { return e.Error() },
		func(s string) string { return s + "!" },
	))

	failed := result.Map(result.Fail[int](&codeError{code: 3}), strconv.Itoa)
	assert.False(t, failed.IsOk())
	assert.Equal(t, "code 3", failed.GetOrHandle(func(e *codeError) string { return e.Error() }))
}

func TestOnFailure_OnlyCalledForFailures(t *testing.T) {
	var seen error
	result.Ok[int, *codeError](1).OnFailure(func(e *codeError) { seen = e })
	assert.Nil(t, seen)

	want := &codeError{code: 9}
	result.Fail[int](want).OnFailure(func(e *codeError) { seen = e })
	assert.True(t, errors.Is(seen, want))
}

func TestZeroResult_IsSuccess(t *testing.T) {
	var r result.Result[string, *codeError]
	v, err, ok := r.Get()
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.Nil(t, err)
}
