package model

import "time"

// Width is the fixed size of the binary field, in bits.
const Width = 10

// FlashDuration is how long the counter stays highlighted after a toggle.
const FlashDuration = 150 * time.Millisecond

// Input is the converter state: the bit to append next, the digits entered so
// far (most significant first) and the last committed conversion.
// The zero value is ready to use.
type Input struct {
	toggle        int
	digits        []uint8
	result        uint
	hasResult     bool
	feedbackSince time.Time // zero when no flash is active
	exitRequested bool
}

// Snapshot is a read-only view of Input for rendering.
type Snapshot struct {
	Toggle     int
	Digits     []uint8
	Result     uint
	HasResult  bool
	Preview    uint
	HasPreview bool
	Flash      bool
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func (m *Input) ToggleUp(now time.Time) {
	m.toggle = mod(m.toggle+1, 2)
	m.feedbackSince = now
}

func (m *Input) ToggleDown(now time.Time) {
	m.toggle = mod(m.toggle-1, 2)
	m.feedbackSince = now
}

// CommitOrConvert appends the toggle bit, or converts the buffer once it
// holds Width digits.
func (m *Input) CommitOrConvert() {
	if len(m.digits) < Width {
		if len(m.digits) == 0 && m.hasResult {
			m.clearResult()
		}
		m.digits = append(m.digits, uint8(m.toggle))
		return
	}
	m.result, m.hasResult = convert(m.digits), true
	m.digits = m.digits[:0]
}

// RemoveLastDigit drops the most recent digit. No-op on an empty buffer.
func (m *Input) RemoveLastDigit() {
	if len(m.digits) == 0 {
		return
	}
	m.digits = m.digits[:len(m.digits)-1]
	m.clearResult()
}

func (m *Input) Reset() {
	m.toggle = 0
	m.digits = m.digits[:0]
	m.clearResult()
	m.feedbackSince = time.Time{}
}

func (m *Input) RequestExit() { m.exitRequested = true }

// AgeFeedback ends the flash once more than FlashDuration has passed since
// the last toggle.
func (m *Input) AgeFeedback(now time.Time) {
	if m.feedbackSince.IsZero() {
		return
	}
	if now.Sub(m.feedbackSince) > FlashDuration {
		m.feedbackSince = time.Time{}
	}
}

func (m *Input) clearResult() {
	m.result, m.hasResult = 0, false
}

func (m *Input) Toggle() int          { return m.toggle }
func (m *Input) Len() int             { return len(m.digits) }
func (m *Input) Result() (uint, bool) { return m.result, m.hasResult }
func (m *Input) FlashActive() bool    { return !m.feedbackSince.IsZero() }
func (m *Input) ExitRequested() bool  { return m.exitRequested }

// Digits returns a copy of the entered bits.
func (m *Input) Digits() []uint8 {
	out := make([]uint8, len(m.digits))
	copy(out, m.digits)
	return out
}

// LivePreview is the value of the partial buffer read as the high-order bits
// of the field. It reports false when no digits are entered.
func (m *Input) LivePreview() (uint, bool) {
	if len(m.digits) == 0 {
		return 0, false
	}
	return convert(m.digits), true
}

func (m *Input) Snapshot() Snapshot {
	s := Snapshot{
		Toggle:    m.toggle,
		Digits:    m.Digits(),
		Result:    m.result,
		HasResult: m.hasResult,
		Flash:     m.FlashActive(),
	}
	s.Preview, s.HasPreview = m.LivePreview()
	return s
}

// convert weighs bit i by 2^(Width-1-i), so a short buffer is left-aligned.
func convert(digits []uint8) uint {
	var v uint
	for i, b := range digits {
		v += uint(b) << (Width - 1 - i)
	}
	return v
}
