package nodetype

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fullmetal/core"
	"fullmetal/inspect"
	"fullmetal/scene"
)

func testTable() *Table {
	t := NewTable()
	Register(t, "CubeNode", func() *scene.CubeNode { return scene.NewCubeNode(core.ColorWhite) }).
		SetCodec(
			func(obj Object, n *scene.CubeNode) error {
				_, err := obj.Get("name", &n.Name)
				return err
			},
			func(obj Object, n *scene.CubeNode) error {
				return obj.Set("name", n.Name)
			},
		)
	Register(t, "SphereNode", func() *scene.SphereNode { return scene.NewSphereNode(core.ColorWhite) }).
		SetCodec(
			func(obj Object, n *scene.SphereNode) error {
				_, err := obj.Get("slices", &n.Slices)
				return err
			},
			func(obj Object, n *scene.SphereNode) error {
				return obj.Set("slices", n.Slices)
			},
		).
		SetIntrospector(inspect.Sphere)
	return t
}

func TestRegisterDuplicatePanics(t *testing.T) {
	table := testTable()
	assert.Panics(t, func() {
		Register(table, "CubeNode", func() *scene.PlaneNode { return nil })
	})
	assert.Panics(t, func() {
		Register(table, "OtherCube", func() *scene.CubeNode { return nil })
	})
	assert.Equal(t, 2, table.Len())
	assert.False(t, table.Has("OtherCube"))
}

func TestIDsSorted(t *testing.T) {
	table := testTable()
	Register(table, "AmbientLightNode", func() *scene.AmbientLightNode {
		return scene.NewAmbientLightNode(core.ColorWhite)
	})
	assert.Equal(t, []string{"AmbientLightNode", "CubeNode", "SphereNode"}, table.IDs())
}

func TestCreate(t *testing.T) {
	table := testTable()
	n := table.Create("SphereNode")
	s, ok := n.(*scene.SphereNode)
	require.True(t, ok)
	assert.Equal(t, 20, s.Slices)
	assert.NotEqual(t, n.Base().ID(), table.Create("SphereNode").Base().ID())

	assert.Panics(t, func() { table.Create("DoesNotExist") })
}

func TestWriteNodeStampsID(t *testing.T) {
	table := testTable()
	for name, n := range map[string]scene.Node{
		"CubeNode":   scene.NewCubeNode(core.ColorRed),
		"SphereNode": scene.NewSphereNode(core.ColorRed),
	} {
		obj := Object{}
		ok, err := table.WriteNode(obj, n)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `"`+name+`"`, string(obj[NodeIDKey]))

		id, ok := table.IDOf(n)
		assert.True(t, ok)
		assert.Equal(t, name, id)
	}
}

func TestWriteNodeUnregistered(t *testing.T) {
	obj := Object{}
	ok, err := testTable().WriteNode(obj, scene.NewPlaneNode(core.ColorWhite, 1, 1, 1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, obj)
}

func TestReadNodeChoosesVariant(t *testing.T) {
	table := testTable()
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(`{"node_id":"SphereNode","slices":7}`), &obj))

	n, err := table.ReadNode(obj)
	require.NoError(t, err)
	s, ok := n.(*scene.SphereNode)
	require.True(t, ok)
	assert.Equal(t, 7, s.Slices)
	assert.Equal(t, 20, s.Stacks)
}

func TestReadNodeRoundTrip(t *testing.T) {
	table := testTable()
	cube := scene.NewCubeNode(core.ColorRed)
	cube.Name = "box"

	obj := Object{}
	_, err := table.WriteNode(obj, cube)
	require.NoError(t, err)

	n, err := table.ReadNode(obj)
	require.NoError(t, err)
	require.IsType(t, &scene.CubeNode{}, n)
	assert.Equal(t, "box", n.Base().Name)
	assert.NotEqual(t, cube.ID(), n.Base().ID())
}

func TestReadNodeErrors(t *testing.T) {
	table := testTable()

	n, err := table.ReadNode(Object{"node_id": json.RawMessage(`"DoesNotExist"`)})
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, ErrUnknownNodeType), "got %v", err)
	assert.Contains(t, err.Error(), "DoesNotExist")

	_, err = table.ReadNode(Object{"name": json.RawMessage(`"x"`)})
	assert.ErrorIs(t, err, ErrMissingNodeID)

	_, err = table.ReadNode(Object{"node_id": json.RawMessage(`null`)})
	assert.ErrorIs(t, err, ErrMissingNodeID)

	_, err = table.ReadNode(Object{"node_id": json.RawMessage(`12`)})
	assert.Error(t, err)

	_, err = table.ReadNode(Object{"node_id": json.RawMessage(`"SphereNode"`), "slices": json.RawMessage(`"many"`)})
	assert.ErrorContains(t, err, "reading SphereNode")
}

type countingUI struct {
	ints int
}

func (c *countingUI) Text(string, ...any)              {}
func (c *countingUI) LabelText(string, string)         {}
func (c *countingUI) Indent()                          {}
func (c *countingUI) Unindent()                        {}
func (c *countingUI) InputText(string, *string) bool   { return false }
func (c *countingUI) Checkbox(string, *bool) bool      { return false }
func (c *countingUI) InputFloat(string, *float32) bool { return false }
func (c *countingUI) InputInt(string, *int) bool       { c.ints++; return false }
func (c *countingUI) DragFloat(string, *float32, float32, float32, float32) bool {
	return false
}

func TestIntrospect(t *testing.T) {
	table := testTable()

	ui := &countingUI{}
	table.Introspect(ui, scene.NewSphereNode(core.ColorWhite))
	assert.Equal(t, 2, ui.ints)

	// registered without an introspector, and not registered at all
	ui = &countingUI{}
	table.Introspect(ui, scene.NewCubeNode(core.ColorWhite))
	table.Introspect(ui, scene.NewPlaneNode(core.ColorWhite, 1, 1, 1))
	assert.Zero(t, ui.ints)
}

func TestObjectGet(t *testing.T) {
	obj := Object{}
	require.NoError(t, obj.Set("n", 3))
	obj["none"] = json.RawMessage("null")

	var n int
	ok, err := obj.Get("n", &n)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n = 9
	ok, err = obj.Get("none", &n)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 9, n)

	ok, _ = obj.Get("missing", &n)
	assert.False(t, ok)
	assert.True(t, obj.Has("none"))
	assert.False(t, obj.Has("missing"))
}
