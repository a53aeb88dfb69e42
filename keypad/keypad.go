// Package keypad implements the calculator entry state machine. It consumes
// single key tokens and maintains the raw entry string together with at most
// one pending binary operation.
package keypad

import (
	"strconv"
	"strings"
)

// Key is a single keypad token
type Key string

const (
	Digit0 Key = "0"
	Digit1 Key = "1"
	Digit2 Key = "2"
	Digit3 Key = "3"
	Digit4 Key = "4"
	Digit5 Key = "5"
	Digit6 Key = "6"
	Digit7 Key = "7"
	Digit8 Key = "8"
	Digit9 Key = "9"

	Point   Key = "."
	Clear   Key = "AC"
	Sign    Key = "+/-"
	Percent Key = "%"

	Divide   Key = "÷"
	Multiply Key = "×"
	Subtract Key = "-"
	Add      Key = "+"
	Equals   Key = "="

	// Noop is the decorative key, always ignored
	Noop Key = "noop"
)

// IsDigit reports whether the key is one of 0-9
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// IsOperator reports whether the key is one of the four binary operators
func (k Key) IsOperator() bool {
	switch k {
	case Divide, Multiply, Subtract, Add:
		return true
	default:
		return false
	}
}

type Op byte

const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func opFor(k Key) Op {
	switch k {
	case Add:
		return OpAdd
	case Subtract:
		return OpSubtract
	case Multiply:
		return OpMultiply
	case Divide:
		return OpDivide
	default:
		return OpNone
	}
}

// Engine holds the keypad state: the entry string being typed and the
// optional pending operation. The zero value is ready to use.
type Engine struct {
	entry   string
	op      Op
	operand float64
}

// Press applies a single key to the state. Keys that require a parsable
// entry are silent no-ops when the entry does not parse.
func (e *Engine) Press(k Key) {
	switch {
	case k == Clear:
		e.Reset()
	case k.IsDigit():
		// raw concatenation, leading zeros are kept
		e.entry += string(k)
	case k == Point:
		if !strings.Contains(e.entry, ".") {
			e.entry += "."
		}
	case k == Sign:
		if v, err := strconv.ParseFloat(e.entry, 64); err == nil {
			e.entry = strconv.FormatFloat(-v, 'f', -1, 64)
		}
	case k == Percent:
		if v, err := strconv.ParseFloat(e.entry, 64); err == nil {
			e.entry = strconv.FormatFloat(v/100, 'f', -1, 64)
		}
	case k.IsOperator():
		if v, err := strconv.ParseFloat(e.entry, 64); err == nil {
			e.operand = v
			e.op = opFor(k)
			e.entry = ""
		}
	case k == Equals:
		e.resolve()
	default:
		// decorative and unknown keys are ignored
	}
}

// resolve computes the pending operation against the current entry. Division
// by zero is not guarded: the IEEE-754 result goes through the same fixed
// 2-decimal formatting, so the entry becomes "+Inf" or "NaN".
func (e *Engine) resolve() {
	v, err := strconv.ParseFloat(e.entry, 64)
	if err != nil || e.op == OpNone {
		return
	}

	var res float64
	switch e.op {
	case OpAdd:
		res = e.operand + v
	case OpSubtract:
		res = e.operand - v
	case OpMultiply:
		res = e.operand * v
	case OpDivide:
		res = e.operand / v
	}

	e.entry = strconv.FormatFloat(res, 'f', 2, 64)
	e.op = OpNone
	e.operand = 0
}

// Reset clears the entry and any pending operation
func (e *Engine) Reset() {
	e.entry = ""
	e.op = OpNone
	e.operand = 0
}

// Display returns the entry string verbatim, or "0" when nothing has been
// typed yet
func (e *Engine) Display() string {
	if e.entry == "" {
		return "0"
	}

	return e.entry
}

// Value returns the current entry parsed as a number. Empty or malformed
// entries degrade to 0.
func (e *Engine) Value() float64 {
	v, err := strconv.ParseFloat(e.entry, 64)
	if err != nil {
		return 0
	}

	return v
}
