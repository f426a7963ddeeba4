package models

// AttachmentItem is one local file bundled into the evidence packet. The
// content is opaque to the pipeline and never leaves the machine.
type AttachmentItem struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"sizeBytes"`
	Content  []byte `json:"-"`
	Note     string `json:"note"`
}

// Clone returns a copy of the item with its own content buffer
func (a AttachmentItem) Clone() AttachmentItem {
	out := a
	if a.Content != nil {
		out.Content = append([]byte(nil), a.Content...)
	}
	return out
}
