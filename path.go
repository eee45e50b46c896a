package mojifix

import (
	"strconv"
	"strings"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a node inside a document. The empty Path is the root.
// Key and Index return new paths and never share backing storage with p.
type Path []Segment

// Key returns p extended with an object key.
func (p Path) Key(name string) Path {
	return append(append(make(Path, 0, len(p)+1), p...), Segment{Key: name})
}

// Index returns p extended with an array index.
func (p Path) Index(i int) Path {
	return append(append(make(Path, 0, len(p)+1), p...), Segment{Index: i, IsIndex: true})
}

// String renders p in dotted form, for example "messages[3].content".
func (p Path) String() string {
	b := &strings.Builder{}
	for _, s := range p {
		if s.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Key)
	}
	return b.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders p as a JSON Pointer (RFC 6901). The root renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		if s.IsIndex {
			b.WriteString(strconv.Itoa(s.Index))
		} else {
			b.WriteString(pointerEscaper.Replace(s.Key))
		}
	}
	return b.String()
}
