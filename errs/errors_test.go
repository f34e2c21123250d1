package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/donkeywon/randrange/util/bufferpool"
	"github.com/stretchr/testify/require"
)

func errA() error {
	return errors.New("errA")
}

func errB() error {
	e := errA()
	_ = e
	return Wrap(e, "errB")
}

func errC() error {
	e := errB()
	_ = e
	return Wrap(e, "errC")
}

func errD() error {
	e := errC()
	_ = e
	return Wrap(e, "errD")
}

func errE() error {
	e1 := errD()
	e2 := errC()
	return Wrap(errors.Join(e1, e2), "errE")
}

func errF() error {
	e := errE()
	_ = e
	return Wrap(e, "errF")
}

func TestErr(t *testing.T) {
	err := errF()
	t.Logf("%+v", err)
	require.Equal(t, "errF: errE: errD: errC: errB: errA\nerrC: errB: errA", err.Error())
}

func TestFormat(t *testing.T) {
	buf := bufferpool.GetBuffer()
	defer buf.Free()
	e := errC()
	ErrToStack(e, buf, 0)
	t.Log(buf.String())

	s := buf.String()
	require.Contains(t, s, "errA")
	require.Contains(t, s, "cause: errB")
	require.Contains(t, s, "cause: errC")
	require.Contains(t, s, "errs.errC")
}

func TestFormatMulti(t *testing.T) {
	s := ErrToStackString(errE())
	require.Contains(t, s, multiErrPrefix)
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap(nil, "x"))
	require.NoError(t, Wrapf(nil, "x %d", 1))
	require.NoError(t, WithStack(nil))
	require.NoError(t, WithCode(nil, CodeInvalidRange))
}

func TestIsAs(t *testing.T) {
	err := Wrapf(ErrInvalidRange, "draw %d", 1)
	require.ErrorIs(t, err, ErrInvalidRange)
	require.EqualError(t, err, "draw 1: invalid range")

	err = Errorf("check: %w", ErrNonFiniteBound)
	require.ErrorIs(t, err, ErrNonFiniteBound)

	var st stackTracer
	require.True(t, errors.As(Errorf("x"), &st))
	require.NotEmpty(t, st.StackTrace())
	require.Equal(t, "x", fmt.Sprintf("%v", Errorf("x")))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, CodeUnknown, CodeOf(nil))
	require.Equal(t, CodeUnknown, CodeOf(errA()))
	err := Wrap(WithCode(errA(), CodeInvalidRequest), "outer")
	require.Equal(t, CodeInvalidRequest, CodeOf(err))
	require.Equal(t, "InvalidRequest", CodeOf(err).String())
	require.Equal(t, "outer: errA", err.Error())
}

func TestPanicToErr(t *testing.T) {
	require.EqualError(t, PanicToErr("boom"), "panic: boom")
	require.Equal(t, ErrInvalidRange, PanicToErr(ErrInvalidRange))
}
