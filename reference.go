// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capture

// MessagePrinter holds a shared reference to text owned elsewhere and
// renders it on every call.
//
// The referent must stay valid and unmodified for as long as any copy of
// the MessagePrinter is in use. This is a caller contract; it is not
// checked at run time.
//
// The zero MessagePrinter holds no reference; calling it panics with
// ErrNilCapture. Use NewMessagePrinter.
type MessagePrinter struct {
	message *string
}

// NewMessagePrinter captures message by reference.
// Panics with ErrNilCapture if message is nil.
func NewMessagePrinter(message *string) MessagePrinter {
	return MessagePrinter{message: mustCapture("MessagePrinter", "message", message)}
}

func (p MessagePrinter) render() string {
	return *mustCapture("MessagePrinter", "message", p.message)
}

// Call renders the referenced text.
func (p MessagePrinter) Call(Unit) string { return p.render() }

// CallMut renders the referenced text.
func (p MessagePrinter) CallMut(Unit) string { return p.render() }

// CallOnce renders the referenced text. The receiver is a copy, so the
// shared reference held by the caller stays live.
func (p MessagePrinter) CallOnce(Unit) string { return p.render() }

var _ Fn[Unit, string] = MessagePrinter{}
