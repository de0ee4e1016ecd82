package mdconverter

import "github.com/rgonek/md-docx-converter/document"

// bufferListItem enters list mode and holds the item until the list ends.
func (s *state) bufferListItem(text, boldTail string, ordered bool) {
	s.inList = true
	s.pendingItems = append(s.pendingItems, document.Block{
		Kind:     document.KindListItem,
		Text:     text,
		Runs:     s.safeInline(text),
		BoldTail: boldTail,
		Ordered:  ordered,
		Format:   s.config.Style.ListItemFormat(),
	})
}

// flushList emits pending items in source order and leaves list mode.
func (s *state) flushList() {
	if len(s.pendingItems) > 0 {
		s.blocks = append(s.blocks, s.pendingItems...)
	}
	s.pendingItems = nil
	s.inList = false
}
