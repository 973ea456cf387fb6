package rc

import (
	"testing"
	"unsafe"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	n int
}

type outer struct {
	inner
	s string
}

type dropCounter struct {
	drops *int
}

func (d *dropCounter) Drop() {
	*d.drops++
}

func TestHandleNew(t *testing.T) {
	h := New(42)
	if h.Count() != 1 {
		t.Errorf("expected new handle to have count 1, has %d", h.Count())
	}
	if *h.Get() != 42 {
		t.Errorf("expected value to be 42, is %d", *h.Get())
	}
	var nilHandle Handle[int]
	if !nilHandle.IsNil() || nilHandle.Valid() || nilHandle.Count() != 0 {
		t.Error("expected zero handle to be nil, invalid and without count")
	}
}

func TestHandleClone(t *testing.T) {
	h := New(inner{n: 7})
	c := h.Clone()
	if h.Count() != 2 || c.Count() != 2 {
		t.Logf("h = %v, c = %v", h, c)
		t.Errorf("expected both handles to observe count 2, have %d and %d", h.Count(), c.Count())
	}
	if c.Get() != h.Get() {
		t.Error("expected clone to alias the same value, doesn't")
	}
	if c.Get().n != 7 {
		t.Errorf("expected clone not to alter the value, is %d", c.Get().n)
	}
	if !h.Same(c) {
		t.Error("expected handles to share a block")
	}
}

func TestHandleFromInterior(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.rc")
	defer teardown()
	//
	h := New(inner{n: 3})
	ref := h.Get()
	r := FromInterior(ref)
	require.Equal(t, 2, h.Count())
	require.True(t, r.Same(h))
	r.Get().n = 4
	assert.Equal(t, 4, h.Get().n)
}

func TestHandleFromInteriorOfLeadingField(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.rc")
	defer teardown()
	//
	h := New(outer{inner: inner{n: 5}, s: "x"})
	r := FromInterior(&h.Get().inner)
	if r.Count() != 2 || h.Count() != 2 {
		t.Errorf("expected leading-field handle to share the count, has %d", r.Count())
	}
	if r.Get().n != 5 {
		t.Errorf("expected leading-field handle to see n=5, sees %d", r.Get().n)
	}
}

func TestHandleFromInteriorOfReleasedBlock(t *testing.T) {
	h := New(inner{n: 1})
	ref := h.Get()
	require.True(t, h.Release())
	assert.Panics(t, func() { FromInterior(ref) })
}

func TestHandleValueOffsetIsUniform(t *testing.T) {
	off := valueOffset[byte]()
	assert.Equal(t, off, valueOffset[int64]())
	assert.Equal(t, off, valueOffset[complex128]())
	assert.Equal(t, off, valueOffset[outer]())
	assert.Equal(t, off, valueOffset[struct{}]())
	assert.Equal(t, unsafe.Sizeof(header{}), off)
}

func TestHandleRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domkit.rc")
	defer teardown()
	//
	drops := 0
	h := New(dropCounter{drops: &drops})
	c1, c2 := h.Clone(), h.Clone()
	if c1.Release() || c2.Release() {
		t.Fatal("expected value to survive while handles remain")
	}
	if drops != 0 {
		t.Errorf("expected no drop yet, have %d", drops)
	}
	if !h.Release() {
		t.Error("expected last release to drop the value")
	}
	if drops != 1 {
		t.Errorf("expected exactly one drop, have %d", drops)
	}
	if h.Valid() {
		t.Error("expected handle to be invalid after final release")
	}
	assert.Panics(t, func() { h.Get() })
	assert.Panics(t, func() { h.Release() })
}

func TestHandleAlias(t *testing.T) {
	h := New(outer{inner: inner{n: 9}})
	a := Alias[inner](h)
	require.Equal(t, 2, a.Count())
	assert.Equal(t, 9, a.Get().n)
	a.Release()
	assert.Equal(t, 1, h.Count())
}
