// Package nodetype is the registry of scene node variants. It binds a
// stable name and a Go type to the operations that construct, decode,
// encode and inspect that variant, so code holding a scene.Node can reach
// the right behaviour without a type switch.
package nodetype

import (
	"reflect"
	"slices"

	"github.com/pkg/errors"

	"fullmetal/inspect"
	"fullmetal/scene"
)

// NodeIDKey is the document key that names a node's variant.
const NodeIDKey = "node_id"

var (
	ErrMissingNodeID   = errors.New("node has no " + NodeIDKey)
	ErrUnknownNodeType = errors.New("unknown node type")
)

type (
	ReadFunc[T scene.Node]       func(obj Object, node T) error
	WriteFunc[T scene.Node]      func(obj Object, node T) error
	IntrospectFunc[T scene.Node] func(ui inspect.UI, node T)
)

// link is the type-erased view of a Link.
type link interface {
	name() string
	create() scene.Node
	read(obj Object) (scene.Node, error)
	write(obj Object, n scene.Node) error
	introspect(ui inspect.UI, n scene.Node)
}

// Link holds the operations of one variant. The codec and introspector are
// optional; a variant without a codec is written with just its node id.
type Link[T scene.Node] struct {
	id        string
	construct func() T
	readFn    ReadFunc[T]
	writeFn   WriteFunc[T]
	inspectFn IntrospectFunc[T]
}

func (l *Link[T]) SetCodec(read ReadFunc[T], write WriteFunc[T]) *Link[T] {
	l.readFn, l.writeFn = read, write
	return l
}

func (l *Link[T]) SetIntrospector(fn IntrospectFunc[T]) *Link[T] {
	l.inspectFn = fn
	return l
}

func (l *Link[T]) name() string { return l.id }

func (l *Link[T]) create() scene.Node { return l.construct() }

func (l *Link[T]) read(obj Object) (scene.Node, error) {
	node := l.construct()
	if l.readFn != nil {
		if err := l.readFn(obj, node); err != nil {
			return nil, errors.Wrapf(err, "reading %s", l.id)
		}
	}
	return node, nil
}

func (l *Link[T]) write(obj Object, n scene.Node) error {
	if l.writeFn == nil {
		return nil
	}
	if err := l.writeFn(obj, n.(T)); err != nil {
		return errors.Wrapf(err, "writing %s", l.id)
	}
	return nil
}

func (l *Link[T]) introspect(ui inspect.UI, n scene.Node) {
	if l.inspectFn != nil {
		l.inspectFn(ui, n.(T))
	}
}

// Table maps names and Go types to registered variants. Registration is
// meant to happen once, before any lookup; the table is not safe for
// concurrent use.
type Table struct {
	byName map[string]link
	byType map[reflect.Type]link
}

func NewTable() *Table {
	return &Table{
		byName: make(map[string]link),
		byType: make(map[reflect.Type]link),
	}
}

// Register adds variant T under name. create must return a new, fully
// defaulted node. Registering a name or a type twice panics.
func Register[T scene.Node](t *Table, name string, create func() T) *Link[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if _, ok := t.byName[name]; ok {
		panic("nodetype: duplicate registration of " + name)
	}
	if existing, ok := t.byType[typ]; ok {
		panic("nodetype: " + typ.String() + " already registered as " + existing.name())
	}
	l := &Link[T]{id: name, construct: create}
	t.byName[name] = l
	t.byType[typ] = l
	return l
}

func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

func (t *Table) Len() int { return len(t.byName) }

// IDs returns every registered name, sorted.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.byName))
	for id := range t.byName {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// IDOf returns the name n's variant is registered under.
func (t *Table) IDOf(n scene.Node) (string, bool) {
	l, ok := t.byType[reflect.TypeOf(n)]
	if !ok {
		return "", false
	}
	return l.name(), true
}

// Create returns a new default node of the named variant. Names come from
// IDs, so an unknown name is a programming error and panics; use ReadNode
// for names taken from files.
func (t *Table) Create(name string) scene.Node {
	l, ok := t.byName[name]
	if !ok {
		panic("nodetype: create of unregistered node type " + name)
	}
	return l.create()
}

// WriteNode writes n's own fields into obj and stamps its node id. It
// reports false, writing nothing, when n's type is not registered.
// Children are not written.
func (t *Table) WriteNode(obj Object, n scene.Node) (bool, error) {
	l, ok := t.byType[reflect.TypeOf(n)]
	if !ok {
		return false, nil
	}
	if err := l.write(obj, n); err != nil {
		return false, err
	}
	if err := obj.Set(NodeIDKey, l.name()); err != nil {
		return false, err
	}
	return true, nil
}

// ReadNode builds the node described by obj, choosing the variant by its
// node id. Children are not read.
func (t *Table) ReadNode(obj Object) (scene.Node, error) {
	var name string
	ok, err := obj.Get(NodeIDKey, &name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingNodeID
	}
	l, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNodeType, "%q", name)
	}
	return l.read(obj)
}

// Introspect draws the editor for n. Nodes of unregistered types, or
// without an introspector, draw nothing.
func (t *Table) Introspect(ui inspect.UI, n scene.Node) {
	if l, ok := t.byType[reflect.TypeOf(n)]; ok {
		l.introspect(ui, n)
	}
}
