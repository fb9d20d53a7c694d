package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func enter(m *Input, bits ...int) {
	for _, b := range bits {
		if m.Toggle() != b {
			m.ToggleUp(t0)
		}
		m.CommitOrConvert()
	}
}

func TestToggleStaysBinary(t *testing.T) {
	var m Input
	seq := []bool{true, true, false, false, false, true, false, true, true, true, false}
	for _, up := range seq {
		if up {
			m.ToggleUp(t0)
		} else {
			m.ToggleDown(t0)
		}
		assert.Contains(t, []int{0, 1}, m.Toggle())
	}
}

func TestToggleIsCyclic(t *testing.T) {
	var m Input
	m.ToggleDown(t0)
	assert.Equal(t, 1, m.Toggle())
	m.ToggleDown(t0)
	assert.Equal(t, 0, m.Toggle())
	m.ToggleUp(t0)
	assert.Equal(t, 1, m.Toggle())
	m.ToggleUp(t0)
	assert.Equal(t, 0, m.Toggle())
}

func TestModNonNegative(t *testing.T) {
	assert.Equal(t, 1, mod(-1, 2))
	assert.Equal(t, 0, mod(-2, 2))
	assert.Equal(t, 1, mod(3, 2))
	assert.Equal(t, 1, mod(-7, 2))
}

func TestCommitNeverExceedsWidth(t *testing.T) {
	var m Input
	m.ToggleUp(t0)
	for i := 0; i < 3*Width+4; i++ {
		m.CommitOrConvert()
		require.LessOrEqual(t, m.Len(), Width)
		if _, ok := m.Result(); ok {
			require.Zero(t, m.Len(), "result present with digits in the buffer")
		}
	}
}

func TestConversion(t *testing.T) {
	for _, tc := range []struct {
		name string
		bits []int
		want uint
	}{
		{"high bit", []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 512},
		{"low bit", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 1},
		{"all ones", []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, 1023},
		{"all zeros", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"mixed", []int{1, 0, 1, 0, 1, 0, 1, 0, 1, 0}, 682},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var m Input
			enter(&m, tc.bits...)
			require.Equal(t, Width, m.Len())
			_, ok := m.Result()
			require.False(t, ok)

			m.CommitOrConvert()

			got, ok := m.Result()
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.Zero(t, m.Len())
		})
	}
}

func TestLivePreviewIsLeftAligned(t *testing.T) {
	var m Input
	_, ok := m.LivePreview()
	assert.False(t, ok)

	enter(&m, 1)
	v, ok := m.LivePreview()
	require.True(t, ok)
	assert.Equal(t, uint(512), v)

	enter(&m, 1)
	v, _ = m.LivePreview()
	assert.Equal(t, uint(768), v)

	enter(&m, 0, 1)
	v, _ = m.LivePreview()
	assert.Equal(t, uint(832), v)

	_, ok = m.Result()
	assert.False(t, ok, "preview must not commit a result")
}

func TestFirstDigitClearsResult(t *testing.T) {
	var m Input
	enter(&m, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	m.CommitOrConvert()
	_, ok := m.Result()
	require.True(t, ok)

	m.CommitOrConvert()

	_, ok = m.Result()
	assert.False(t, ok)
	assert.Equal(t, []uint8{1}, m.Digits())
}

func TestRemoveLastDigit(t *testing.T) {
	var m Input
	enter(&m, 1, 0, 1)
	m.RemoveLastDigit()
	assert.Equal(t, []uint8{1, 0}, m.Digits())
	v, _ := m.LivePreview()
	assert.Equal(t, uint(512), v)
}

func TestRemoveLastDigitOnEmptyIsNoop(t *testing.T) {
	var m Input
	enter(&m, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	m.CommitOrConvert()
	m.RequestExit()
	before := m.Snapshot()

	m.RemoveLastDigit()

	assert.Equal(t, before, m.Snapshot())
	assert.True(t, m.ExitRequested())
	r, ok := m.Result()
	assert.True(t, ok)
	assert.Equal(t, uint(1023), r)
}

func TestReset(t *testing.T) {
	var m Input
	enter(&m, 1, 0, 1)
	m.ToggleUp(t0)
	require.True(t, m.FlashActive())

	m.Reset()

	assert.Equal(t, 0, m.Toggle())
	assert.Empty(t, m.Digits())
	_, ok := m.Result()
	assert.False(t, ok)
	assert.False(t, m.FlashActive())
	assert.False(t, m.ExitRequested())

	enter(&m, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	m.CommitOrConvert()
	m.Reset()
	_, ok = m.Result()
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestResetKeepsExitRequest(t *testing.T) {
	var m Input
	m.RequestExit()
	m.Reset()
	assert.True(t, m.ExitRequested())
}

func TestAgeFeedback(t *testing.T) {
	var m Input
	m.AgeFeedback(t0)
	assert.False(t, m.FlashActive())

	m.ToggleUp(t0)
	require.True(t, m.FlashActive())

	m.AgeFeedback(t0.Add(100 * time.Millisecond))
	assert.True(t, m.FlashActive())

	m.AgeFeedback(t0.Add(FlashDuration))
	assert.True(t, m.FlashActive(), "flash must last through the threshold itself")

	m.AgeFeedback(t0.Add(FlashDuration + time.Millisecond))
	assert.False(t, m.FlashActive())
}

func TestToggleRestartsFlash(t *testing.T) {
	var m Input
	m.ToggleUp(t0)
	later := t0.Add(120 * time.Millisecond)
	m.ToggleDown(later)

	m.AgeFeedback(t0.Add(200 * time.Millisecond))
	assert.True(t, m.FlashActive())

	m.AgeFeedback(later.Add(FlashDuration + time.Millisecond))
	assert.False(t, m.FlashActive())
}

func TestDisplayStateIsExclusive(t *testing.T) {
	var m Input
	check := func() {
		_, hasPreview := m.LivePreview()
		_, hasResult := m.Result()
		assert.False(t, hasPreview && hasResult)
	}
	check()
	for i := 0; i < 25; i++ {
		if i%3 == 0 {
			m.ToggleUp(t0)
		}
		m.CommitOrConvert()
		check()
		if i%7 == 0 {
			m.RemoveLastDigit()
			check()
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	var m Input
	enter(&m, 1, 1)
	s := m.Snapshot()
	s.Digits[0] = 0
	assert.Equal(t, []uint8{1, 1}, m.Digits())
	assert.True(t, s.HasPreview)
	assert.Equal(t, uint(768), s.Preview)
}
