package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/p14n/fp/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultCombinators(t *testing.T) {
	errBoom := errors.New("boom")
	double := func(n int) int { return 2 * n }

	assert.Equal(t, 14, WithDefault(0, Map(double, Ok(7))))
	assert.Equal(t, -1, WithDefault(-1, Map(double, Err[int](errBoom))))

	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](errBoom)
		}
		return Ok(n / 2)
	}
	_, err := AndThen(half, Ok(3)).Get()
	assert.ErrorIs(t, err, errBoom)
	n, err := AndThen(half, Ok(4)).Get()
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.True(t, ToMaybe(Err[int](errBoom)).IsNothing())
	assert.Equal(t, 3, ToMaybe(From(3, nil)).WithDefault(0))
	_, err = From(0, errBoom).Get()
	assert.ErrorIs(t, err, errBoom)
}
