package ui

import (
	"strings"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// decimalSeparator is the only separator accepted; values are parsed with strconv.
const decimalSeparator = '.'

// NumericalEntry is an Entry that only accepts digits and, when AllowDecimal
// is set, a single decimal point.
type NumericalEntry struct {
	widget.Entry

	AllowDecimal bool
}

// NewNumericalEntry creates an entry accepting whole numbers only.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewDecimalEntry creates an entry accepting numbers with a fractional part.
func NewDecimalEntry() *NumericalEntry {
	entry := NewNumericalEntry()
	entry.AllowDecimal = true
	return entry
}

// TypedRune drops every rune that cannot be part of a number.
// Pasted text bypasses this filter; callers attach a Validator for that case.
func (e *NumericalEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		e.Entry.TypedRune(r)
	case r == decimalSeparator && e.AllowDecimal && !strings.ContainsRune(e.Text, decimalSeparator):
		e.Entry.TypedRune(r)
	}
}

// Keyboard shows the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
