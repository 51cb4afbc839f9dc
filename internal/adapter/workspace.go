package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	m "openheader.dev/pkg/openheader/internal/model"
)

// Workspace is an in-memory set of open documents backing the interactive
// session. Documents keep their open order; one of them is active.
type Workspace struct {
	fsAdapter SourceFSAdapter

	mu       sync.RWMutex
	docs     map[string]m.Document
	contents map[string]string
	order    []string
	active   string
	scratch  int
}

// NewWorkspace creates an empty workspace reading files through fsAdapter.
func NewWorkspace(fsAdapter SourceFSAdapter) *Workspace {
	return &Workspace{
		fsAdapter: fsAdapter,
		docs:      make(map[string]m.Document),
		contents:  make(map[string]string),
	}
}

func newDocument(path m.Path) m.Document {
	return m.Document{
		ID:       uuid.New().String(),
		Name:     filepath.Base(string(path)),
		Location: path,
	}
}

// OpenLocation loads path into a new document and makes it active. Opening a
// path twice yields two views, the same way an editor tab would.
func (w *Workspace) OpenLocation(ctx context.Context, path m.Path) error {
	content, err := w.fsAdapter.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	doc := newDocument(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.add(doc, string(content))
	slog.Debug("opened document", "id", doc.ID, "path", path)

	return nil
}

// AddScratch adds an unsaved document without a location and makes it active.
func (w *Workspace) AddScratch(content string) m.Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.scratch++
	doc := m.Document{
		ID:   uuid.New().String(),
		Name: fmt.Sprintf("Untitled %d", w.scratch),
	}

	w.add(doc, content)

	return doc
}

func (w *Workspace) add(doc m.Document, content string) {
	w.docs[doc.ID] = doc
	w.contents[doc.ID] = content
	w.order = append(w.order, doc.ID)
	w.active = doc.ID
}

// ActiveDocument returns the focused document.
func (w *Workspace) ActiveDocument() (m.Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc, ok := w.docs[w.active]

	return doc, ok
}

// Documents returns all documents in open order.
func (w *Workspace) Documents() []m.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()

	docs := make([]m.Document, 0, len(w.order))
	for _, id := range w.order {
		docs = append(docs, w.docs[id])
	}

	return docs
}

// FocusDocument makes the document with id active.
func (w *Workspace) FocusDocument(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.docs[id]; !ok {
		return false
	}

	w.active = id

	return true
}

// Content returns the text loaded for a document.
func (w *Workspace) Content(id string) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.contents[id]
}

// Close removes a document. The next document in open order (or the previous
// one when closing the last) becomes active.
func (w *Workspace) Close(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx := w.indexOf(id)
	if idx < 0 {
		return false
	}

	delete(w.docs, id)
	delete(w.contents, id)
	w.order = append(w.order[:idx], w.order[idx+1:]...)

	if w.active == id {
		w.active = ""

		if len(w.order) > 0 {
			if idx >= len(w.order) {
				idx = len(w.order) - 1
			}

			w.active = w.order[idx]
		}
	}

	return true
}

// Next activates the document after the active one, wrapping around.
func (w *Workspace) Next() {
	w.cycle(1)
}

// Previous activates the document before the active one, wrapping around.
func (w *Workspace) Previous() {
	w.cycle(-1)
}

func (w *Workspace) cycle(step int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.order) == 0 {
		return
	}

	idx := w.indexOf(w.active)
	if idx < 0 {
		w.active = w.order[0]
		return
	}

	n := len(w.order)
	w.active = w.order[((idx+step)%n+n)%n]
}

func (w *Workspace) indexOf(id string) int {
	for i, docID := range w.order {
		if docID == id {
			return i
		}
	}

	return -1
}
