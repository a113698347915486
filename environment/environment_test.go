package environment

import (
	"testing"

	"github.com/ckessler/lox/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	e := New(nil)
	e.Define("x", objects.Number(1))
	v, err := e.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(1), v)
}

func TestGet_UndefinedVariable(t *testing.T) {
	e := New(nil)
	_, err := e.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestGet_WalksParentChain(t *testing.T) {
	outer := New(nil)
	outer.Define("x", objects.Number(1))
	inner := New(outer)
	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(1), v)
}

func TestDefine_ShadowsOuterScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", objects.Number(1))
	inner := New(outer)
	inner.Define("x", objects.Number(2))

	innerVal, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(2), innerVal)

	outerVal, err := outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(1), outerVal)
}

func TestAssign_UpdatesNearestEnclosingScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", objects.Number(1))
	inner := New(outer)

	err := inner.Assign("x", objects.Number(9))
	require.NoError(t, err)

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(9), v)

	v, err = outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(9), v)
}

func TestAssign_UndefinedVariable(t *testing.T) {
	e := New(nil)
	err := e.Assign("missing", objects.Number(1))
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestSharedByReference_MutationVisibleAfterCapture(t *testing.T) {
	// Closures capture *Environment by pointer (not a snapshot), so a
	// later Define/Assign in the captured environment must be visible
	// through the pointer held by the "closure".
	outer := New(nil)
	outer.Define("count", objects.Number(0))
	captured := outer // as if a closure stored this pointer at creation time

	outer.Assign("count", objects.Number(1))
	v, err := captured.Get("count")
	require.NoError(t, err)
	assert.Equal(t, objects.Number(1), v)
}
