package graph

// Tree aggregates traversal results level by level, the way a tree()
// step does. Entries keep insertion order and keys may be any
// encodable value, so the usual map type does not fit here.
type Tree struct {
	Entries []TreeEntry
}

// TreeEntry binds one result object to the subtree of results reached
// through it.
type TreeEntry struct {
	Key     interface{}
	Subtree *Tree
}

func NewTree() *Tree {
	return &Tree{}
}

// Add appends a key with an empty subtree and returns that subtree so
// deeper levels can be chained onto it.
func (t *Tree) Add(key interface{}) *Tree {
	sub := NewTree()
	t.Entries = append(t.Entries, TreeEntry{Key: key, Subtree: sub})
	return sub
}

// Get returns the subtree stored under key, or nil.
func (t *Tree) Get(key interface{}) *Tree {
	for _, entry := range t.Entries {
		if entry.Key == key {
			return entry.Subtree
		}
	}
	return nil
}

// Size is the number of entries at this level.
func (t *Tree) Size() int {
	return len(t.Entries)
}
