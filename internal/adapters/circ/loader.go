// Package circ loads Logisim design files and the libraries they link.
package circ

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"go.trai.ch/bom/internal/adapters/fs"
	"go.trai.ch/bom/internal/core/domain"
	"go.trai.ch/bom/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	tagComp = "comp"
	tagWire = "wire"
)

// Loader implements ports.DocumentLoader for Logisim .circ files.
type Loader struct {
	FS     fs.FileSystem
	Logger ports.Logger
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys fs.FileSystem, logger ports.Logger) *Loader {
	return &Loader{FS: fsys, Logger: logger}
}

// Load parses the design file at path, then follows its file# library links depth-first.
// Each link is resolved against the directory of the document that declares it and every
// file is loaded at most once. Libraries that are missing or malformed are skipped with a warning.
func (l *Loader) Load(ctx context.Context, path string) (*domain.DocumentSet, error) {
	abs, err := l.FS.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}

	data, err := l.FS.ReadFile(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", abs)
	}

	doc, err := parse(abs, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", abs)
	}

	set := domain.NewDocumentSet()
	state := &loadState{
		set:  set,
		seen: map[string]struct{}{abs: {}},
	}
	set.Add(doc)

	if err := l.followLinks(ctx, state, doc); err != nil {
		return nil, err
	}
	return set, nil
}

type loadState struct {
	set  *domain.DocumentSet
	seen map[string]struct{}
}

func (l *Loader) followLinks(ctx context.Context, state *loadState, doc *domain.Document) error {
	base := filepath.Dir(doc.Path)
	for _, link := range doc.Links {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, ok := link.FilePath()
		if !ok {
			continue
		}

		target := rel
		if !filepath.IsAbs(target) {
			target = filepath.Join(base, target)
		}
		target = filepath.Clean(target)

		if _, done := state.seen[target]; done {
			continue
		}
		state.seen[target] = struct{}{}

		lib, err := l.loadLibrary(target)
		if err != nil {
			l.Logger.Warn(fmt.Sprintf("skipping library %s declared in %s: %s", target, doc.Path, err.Error()))
			continue
		}

		state.set.Add(lib)
		if err := l.followLinks(ctx, state, lib); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadLibrary(path string) (*domain.Document, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrLibraryNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLibraryParseFailed.Error()), "path", path)
	}

	doc, err := parse(path, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLibraryParseFailed.Error()), "path", path)
	}
	return doc, nil
}

// parse decodes a design file into a document.
func parse(path string, data []byte) (*domain.Document, error) {
	var project projectXML
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&project); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Path:     path,
		Links:    make([]domain.LibraryLink, 0, len(project.Libs)),
		Circuits: make([]domain.CircuitDefinition, 0, len(project.Circuits)),
	}

	for _, lib := range project.Libs {
		id := lib.Name
		if id == "" {
			id = lib.ID
		}
		doc.Links = append(doc.Links, domain.LibraryLink{ID: id, Desc: lib.Desc})
	}

	for _, c := range project.Circuits {
		def := domain.CircuitDefinition{Name: c.Name}
		for _, child := range c.Children {
			if el := toElement(child); el != nil {
				def.Elements = append(def.Elements, el)
			}
		}
		doc.Circuits = append(doc.Circuits, def)
	}

	return doc, nil
}

func toElement(e elementXML) domain.Element {
	switch e.XMLName.Local {
	case tagWire:
		return &domain.Wire{From: e.From, To: e.To}
	case tagComp:
		comp := &domain.Component{
			Library: e.Lib,
			Type:    domain.NewInternedString(e.Name),
		}
		if len(e.Attrs) > 0 {
			comp.Attributes = make(domain.Attributes, 0, len(e.Attrs))
			for _, a := range e.Attrs {
				comp.Attributes = append(comp.Attributes, domain.Attribute{
					Name:  domain.NewInternedString(a.Name),
					Value: a.value(),
				})
			}
		}
		return comp
	default:
		return nil
	}
}
