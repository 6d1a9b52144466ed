// Package domain contains the core domain model for pricing hierarchical circuit designs.
package domain

import "strings"

// LibraryFilePrefix marks a library link whose description points at another design file.
const LibraryFilePrefix = "file#"

// LibraryLink is a library declaration of a document.
type LibraryLink struct {
	ID   string
	Desc string
}

// FilePath returns the linked file path and true when the link refers to an on-disk design file.
// The path is returned as written, relative paths are resolved by the loader.
func (l LibraryLink) FilePath() (string, bool) {
	if !strings.HasPrefix(l.Desc, LibraryFilePrefix) {
		return "", false
	}
	return strings.TrimPrefix(l.Desc, LibraryFilePrefix), true
}

// Attribute is a single name/value pair declared on a component.
type Attribute struct {
	Name  InternedString
	Value string
}

// Attributes is the ordered attribute list of a component.
type Attributes []Attribute

// Lookup returns the value of the named attribute.
// When a name is declared more than once the last declaration wins.
func (a Attributes) Lookup(name string) (string, bool) {
	key := NewInternedString(name)
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == key {
			return a[i].Value, true
		}
	}
	return "", false
}

// Has reports whether the named attribute is declared, whatever its value.
func (a Attributes) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Element is one instantiated item of a circuit: a *Wire or a *Component.
type Element interface {
	element()
}

// Wire connects two points of a circuit.
type Wire struct {
	From string
	To   string
}

func (*Wire) element() {}

// Component instantiates either a built-in primitive or another circuit.
// Library is empty when the component declares no library.
type Component struct {
	Library    string
	Type       InternedString
	Attributes Attributes
}

func (*Component) element() {}

// CircuitDefinition is a named circuit and its elements in file order.
type CircuitDefinition struct {
	Name     string
	Elements []Element
}

// Document is a parsed design file.
type Document struct {
	Path     string
	Links    []LibraryLink
	Circuits []CircuitDefinition
}

// Circuit returns the definition of the named circuit in this document.
func (d *Document) Circuit(name string) (*CircuitDefinition, bool) {
	for i := range d.Circuits {
		if d.Circuits[i].Name == name {
			return &d.Circuits[i], true
		}
	}
	return nil, false
}

// DocumentSet holds every document loaded for one computation, in load order.
type DocumentSet struct {
	documents []*Document
	index     map[string]int
}

// NewDocumentSet creates an empty DocumentSet.
func NewDocumentSet() *DocumentSet {
	return &DocumentSet{
		index: make(map[string]int),
	}
}

// Add appends a document. Circuits already defined by an earlier document keep
// resolving to that earlier document.
func (s *DocumentSet) Add(doc *Document) {
	pos := len(s.documents)
	s.documents = append(s.documents, doc)
	for _, c := range doc.Circuits {
		if _, exists := s.index[c.Name]; !exists {
			s.index[c.Name] = pos
		}
	}
}

// Documents returns the loaded documents in load order.
func (s *DocumentSet) Documents() []*Document {
	return s.documents
}

// Len returns the number of loaded documents.
func (s *DocumentSet) Len() int {
	return len(s.documents)
}

// Resolve finds the first document, in load order, that defines the named circuit.
func (s *DocumentSet) Resolve(name string) (*Document, *CircuitDefinition, bool) {
	pos, ok := s.index[name]
	if !ok {
		return nil, nil, false
	}
	doc := s.documents[pos]
	def, ok := doc.Circuit(name)
	if !ok {
		return nil, nil, false
	}
	return doc, def, true
}

// CircuitRef names a resolvable circuit and the document that defines it.
type CircuitRef struct {
	Name     string
	Document string
}

// CircuitNames lists every resolvable circuit once, in load order.
// A name defined by several documents is reported with the document that wins resolution.
func (s *DocumentSet) CircuitNames() []CircuitRef {
	refs := make([]CircuitRef, 0, len(s.index))
	seen := make(map[string]struct{}, len(s.index))
	for _, doc := range s.documents {
		for _, c := range doc.Circuits {
			if _, ok := seen[c.Name]; ok {
				continue
			}
			seen[c.Name] = struct{}{}
			refs = append(refs, CircuitRef{Name: c.Name, Document: doc.Path})
		}
	}
	return refs
}
