package qdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbits/q-utils/qdict"
)

type codec struct {
	name string
}

func (c *codec) Name() string { return c.name }

func TestRegisterIn(t *testing.T) {
	r := qdict.NewRegistry()

	c := &codec{name: "json"}

	got := qdict.RegisterIn(r, c)
	assert.Same(t, c, got)

	v, err := r.Get("json")
	require.NoError(t, err)
	assert.Same(t, c, v)
}

func TestRegistryIsADict(t *testing.T) {
	r := qdict.NewRegistry()
	qdict.RegisterIn(r, &codec{name: "json"})
	qdict.RegisterIn(r, &codec{name: "msgpack"})

	assert.True(t, r.Has("json"))
	assert.Len(t, r.Keys(), 2)

	_, err := r.Get("yaml")
	assert.ErrorIs(t, err, qdict.ErrMissingKey)
}
