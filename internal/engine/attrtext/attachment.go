package attrtext

// AttachmentRune is the placeholder character occupied by a text attachment.
// It is the Unicode object replacement character.
const AttachmentRune = '￼'

// AttrAttachment is the attribute name under which an attachment is stored
// on its placeholder character.
const AttrAttachment = "attachment"

// Attachment is an opaque atomic unit embedded in attributed text. It
// occupies exactly one position in the character sequence. The payload is
// never interpreted by the engine.
type Attachment struct {
	Kind string
	Data any
}

// ForAttachment creates a one-character attributed string holding the
// attachment, tagged with the given base attributes.
func ForAttachment(a *Attachment, attrs AttrSet) Text {
	return Text{
		runes: []rune{AttachmentRune},
		runs: []Run{{
			Start: 0,
			End:   1,
			Attrs: attrs.With(AttrAttachment, HandleValue(a)),
		}},
	}
}

// AttachmentAt returns the attachment stored at the given offset, if any.
func (t Text) AttachmentAt(offset int) (*Attachment, bool) {
	attrs := t.AttrsAt(offset)
	v, ok := attrs[AttrAttachment]
	if !ok || v.Kind() != KindHandle {
		return nil, false
	}
	a, ok := v.Handle().(*Attachment)
	return a, ok
}
