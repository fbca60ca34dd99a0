package housing

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// KeyFunc extracts a grouping key from a record.
type KeyFunc func(Record) any

// Field returns the KeyFunc reading field. A missing field yields nil, so
// records missing the field and records holding an explicit nil share one
// group. The dashboards kept those two apart (undefined vs null); datasets
// decoded from CSV cannot tell them apart anyway.
func Field(name string) KeyFunc {
	return func(r Record) any { return r[name] }
}

// Group is a node in the tree built by GroupBy.
type Group struct {
	Key      any      // key value, as first seen in the input
	Records  Dataset  // every record of the group, in input order
	Children []*Group // sub-groups for the next key, nil at the leaves
}

// Len returns the number of records in the group.
func (g *Group) Len() int { return len(g.Records) }

// GroupBy partitions data by the first key, then each partition by the next
// key and so on. Groups are listed in the order their key first appears in
// data. Only observed key combinations produce groups.
func GroupBy(data Dataset, keys ...KeyFunc) []*Group {
	if len(keys) == 0 || len(data) == 0 {
		return nil
	}
	var groups []*Group
	index := make(map[any]*Group)
	for _, r := range data {
		k := keys[0](r)
		id := keyOf(k)
		g, ok := index[id]
		if !ok {
			g = &Group{Key: k}
			index[id] = g
			groups = append(groups, g)
		}
		g.Records = append(g.Records, r)
	}
	if len(keys) > 1 {
		for _, g := range groups {
			g.Children = GroupBy(g.Records, keys[1:]...)
		}
	}
	return groups
}

// Walk calls f for every leaf group, with the keys on the path from the root.
// The path slice is reused between calls.
func Walk(groups []*Group, f func(path []any, g *Group)) {
	var walk func(path []any, groups []*Group)
	walk = func(path []any, groups []*Group) {
		for _, g := range groups {
			p := append(path, g.Key)
			if len(g.Children) == 0 {
				f(p, g)
				continue
			}
			walk(p, g.Children)
		}
	}
	walk(make([]any, 0, 4), groups)
}

// Index gives point access to the groups of a tree, at every level.
type Index struct {
	groups map[string]*Group
}

// NewIndex indexes groups by their key path.
func NewIndex(groups []*Group) *Index {
	x := &Index{groups: make(map[string]*Group)}
	var add func(path []any, groups []*Group)
	add = func(path []any, groups []*Group) {
		for _, g := range groups {
			p := append(path, g.Key)
			x.groups[tupleID(p)] = g
			add(p, g.Children)
		}
	}
	add(nil, groups)
	return x
}

// Lookup returns the group reached by keys, one per level.
func (x *Index) Lookup(keys ...any) (*Group, bool) {
	g, ok := x.groups[tupleID(keys)]
	return g, ok
}

// Len returns the number of indexed groups, all levels included.
func (x *Index) Len() int { return len(x.groups) }

// nanKey is the single key shared by all NaN values.
type nanKey struct{}

// keyOf normalizes v into a comparable map key: numbers of any type with the
// same value share a key, as do all NaNs.
func keyOf(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		return x.String()
	case Money:
		return x.value.String()
	}
	if isNumber(v) {
		f := Number(v)
		if math.IsNaN(f) {
			return nanKey{}
		}
		return f
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%T:%v", v, v)
}

// sameValue reports whether a and b are the same key. NaN matches nothing.
func sameValue(a, b any) bool {
	ka, kb := keyOf(a), keyOf(b)
	if _, ok := ka.(nanKey); ok {
		return false
	}
	return ka == kb
}

// tupleID encodes a key path into a string map key.
func tupleID(keys []any) string {
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		id := keyOf(k)
		fmt.Fprintf(&b, "%T|%v", id, id)
	}
	return b.String()
}
