package qdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbits/q-utils/qdict"
)

func TestAttributeReadWriteParity(t *testing.T) {
	d := qdict.New()
	d.Set("key", "value")

	v, err := d.Get("key")
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	// Attribute access and item access see the same entry.
	assert.Equal(t, "value", d["key"])

	d["other"] = 2
	assert.Equal(t, 2, d.MustGet("other"))
}

func TestGetMissingKey(t *testing.T) {
	d := qdict.Dict{"present": 1}

	_, err := d.Get("absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, qdict.ErrMissingKey)

	var keyErr *qdict.KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "absent", keyErr.Key)

	assert.Panics(t, func() { d.MustGet("absent") })
}

func TestGetDefault(t *testing.T) {
	d := qdict.Dict{"a": 1}

	assert.Equal(t, 1, d.GetDefault("a", 99))
	assert.Equal(t, 99, d.GetDefault("b", 99))
	assert.Nil(t, d.GetDefault("b", nil))
}

func TestAs(t *testing.T) {
	d := qdict.Dict{"port": 8080, "host": "localhost"}

	port, err := qdict.As[int](d, "port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	_, err = qdict.As[int](d, "host")
	assert.ErrorIs(t, err, qdict.ErrConvert)

	_, err = qdict.As[int](d, "absent")
	assert.ErrorIs(t, err, qdict.ErrMissingKey)
}

func TestCopyIsolation(t *testing.T) {
	d := qdict.Dict{"a": 1, "b": 2}

	c := d.Copy()
	assert.Equal(t, d, c)

	c.Set("c", 3)
	c.Set("a", 99)

	assert.False(t, d.Has("c"))
	assert.Equal(t, 1, d["a"])
}

func TestCopyWithAdd(t *testing.T) {
	d := qdict.Dict{"a": 1}

	c := d.Copy(qdict.Dict{"b": 2}, map[string]any{"a": 10})

	assert.Equal(t, qdict.Dict{"a": 10, "b": 2}, c)
	assert.Equal(t, qdict.Dict{"a": 1}, d)
}

func TestAddCombinesWithoutMutation(t *testing.T) {
	d1 := qdict.Dict{"a": 1, "b": 2}
	d2 := qdict.Dict{"b": 20, "c": 30}

	sum := d1.Add(d2)

	assert.Equal(t, qdict.Dict{"a": 1, "b": 20, "c": 30}, sum)
	assert.Equal(t, qdict.Dict{"a": 1, "b": 2}, d1)
	assert.Equal(t, qdict.Dict{"b": 20, "c": 30}, d2)
}

func TestUpdateNonMappingIsNoop(t *testing.T) {
	d := qdict.Dict{"a": 1}

	got := d.Update(42)

	assert.Equal(t, qdict.Dict{"a": 1}, got)
	got = d.Update(nil)
	assert.Equal(t, qdict.Dict{"a": 1}, got)
}

func TestUpdateAdditive(t *testing.T) {
	d := qdict.Dict{"a": 1, "b": 2}

	d.Update(map[string]any{"b": 20, "c": 30})

	assert.Equal(t, qdict.Dict{"a": 1, "b": 20, "c": 30}, d)
}

func TestUpdateExistingOnly(t *testing.T) {
	d := qdict.Dict{"a": 1, "b": 2}

	d.Update(qdict.Dict{"b": 20, "c": 30}, qdict.ExistingOnly())

	// Present keys are refreshed; source-only keys never appear.
	assert.Equal(t, qdict.Dict{"a": 1, "b": 20}, d)
}

func TestUpdateRecursiveMergesDicts(t *testing.T) {
	d := qdict.Dict{
		"cfg":  qdict.Dict{"a": 1},
		"name": "svc",
	}

	d.Update(qdict.Dict{
		"cfg":  qdict.Dict{"b": 2},
		"name": "svc2",
	}, qdict.Recursive())

	cfg, err := qdict.As[qdict.Dict](d, "cfg")
	require.NoError(t, err)
	assert.Equal(t, qdict.Dict{"a": 1, "b": 2}, cfg)
	assert.Equal(t, "svc2", d["name"])
}

func TestUpdateRecursiveLeavesDictForScalarSource(t *testing.T) {
	d := qdict.Dict{"cfg": qdict.Dict{"a": 1}}

	// A non-mapping replacement for a Dict value is dropped, not spliced in.
	d.Update(qdict.Dict{"cfg": "scalar"}, qdict.Recursive())

	assert.Equal(t, qdict.Dict{"cfg": qdict.Dict{"a": 1}}, d)
}

func TestUpdateRecursivePlainMapsMergeFlat(t *testing.T) {
	inner := map[string]any{"a": 1}
	d := qdict.Dict{"cfg": inner}

	d.Update(qdict.Dict{"cfg": map[string]any{"b": 2}}, qdict.Recursive())

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, d["cfg"])
}

func TestUpdateRecursiveConvertMaps(t *testing.T) {
	d := qdict.New()

	d.Update(map[string]any{
		"cfg": map[string]any{"a": 1},
	}, qdict.Recursive(), qdict.ConvertMaps())

	cfg, err := qdict.As[qdict.Dict](d, "cfg")
	require.NoError(t, err)
	assert.Equal(t, qdict.Dict{"a": 1}, cfg)
}

func TestUpdateRecursiveExistingOnly(t *testing.T) {
	d := qdict.Dict{
		"cfg":  qdict.Dict{"a": 1, "keep": true},
		"port": 80,
	}

	d.Update(qdict.Dict{
		"cfg":   qdict.Dict{"a": 10, "new": "dropped"},
		"port":  8080,
		"extra": "dropped",
	}, qdict.Recursive(), qdict.ExistingOnly())

	assert.Equal(t, qdict.Dict{
		"cfg":  qdict.Dict{"a": 10, "keep": true},
		"port": 8080,
	}, d)
}

func TestUpdateReturnsReceiver(t *testing.T) {
	d := qdict.Dict{"a": 1}

	got := d.Update(qdict.Dict{"b": 2}).Update(qdict.Dict{"c": 3})

	assert.Equal(t, qdict.Dict{"a": 1, "b": 2, "c": 3}, got)
	assert.Equal(t, got, d)
}

func TestFromNested(t *testing.T) {
	d := qdict.FromNested(map[string]any{
		"outer": map[string]any{
			"inner": map[string]any{"leaf": "v"},
		},
		"list": []any{map[string]any{"x": 1}},
	})

	outer, err := qdict.As[qdict.Dict](d, "outer")
	require.NoError(t, err)

	inner, err := qdict.As[qdict.Dict](outer, "inner")
	require.NoError(t, err)
	assert.Equal(t, "v", inner["leaf"])

	list, err := qdict.As[[]any](d, "list")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.IsType(t, qdict.Dict{}, list[0])
}
