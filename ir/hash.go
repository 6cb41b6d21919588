package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the subtree rooted at n, covering name,
// value, options, qualifiers and children. Structurally equal trees hash
// equal within a process. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteString(n.Name)
	h.WriteByte(0)
	h.WriteString(n.Value)
	h.WriteByte(0)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n.Opts))
	h.Write(b[:])

	h.WriteByte(byte(len(n.qualifiers)))
	for _, q := range n.qualifiers {
		binary.LittleEndian.PutUint64(b[:], q.Hash())
		h.Write(b[:])
	}
	for _, c := range n.children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
