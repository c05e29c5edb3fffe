package core

import "unicode/utf8"

// TextInput collects typed characters into a line of text.
// Backspace removes the last rune; Enter and control characters are ignored.
type TextInput struct {
	buf   []byte
	limit int
}

// NewTextInput returns an input holding at most limit runes (0 = unlimited).
func NewTextInput(initial string, limit int) *TextInput {
	in := &TextInput{limit: limit}
	for _, r := range initial {
		in.insert(r)
	}
	return in
}

// Handle applies ev and reports whether the text changed.
func (in *TextInput) Handle(ev Event) bool {
	switch e := ev.(type) {
	case EventChar:
		return in.insert(e.Rune)
	case EventKey:
		if e.Down && e.Key == KeyBackspace {
			return in.backspace()
		}
	}
	return false
}

func (in *TextInput) insert(r rune) bool {
	if r < 0x20 || r == 0x7f {
		return false
	}
	if in.limit > 0 && utf8.RuneCount(in.buf) >= in.limit {
		return false
	}
	in.buf = utf8.AppendRune(in.buf, r)
	return true
}

func (in *TextInput) backspace() bool {
	if len(in.buf) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(in.buf)
	in.buf = in.buf[:len(in.buf)-size]
	return true
}

func (in *TextInput) String() string { return string(in.buf) }
func (in *TextInput) Len() int       { return utf8.RuneCount(in.buf) }
func (in *TextInput) Reset()         { in.buf = in.buf[:0] }
