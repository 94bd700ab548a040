package guestbook

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"unicode/utf8"
)

func TestNewMessage(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		text    string
		wantErr error
	}{
		{name: "valid", author: "Ana", text: "Boas férias!"},
		{name: "keeps_spaces", author: "  Ana ", text: " oi "},
		{name: "empty_name", author: "", text: "oi", wantErr: ErrEmptyName},
		{name: "blank_name", author: " \t\n", text: "oi", wantErr: ErrEmptyName},
		{name: "empty_message", author: "Ana", text: "", wantErr: ErrEmptyMessage},
		{name: "blank_message", author: "Ana", text: "   ", wantErr: ErrEmptyMessage},
		{name: "both_blank", author: " ", text: " ", wantErr: ErrEmptyName},
		{name: "zero_width_name", author: "\u200B\u200D", text: "oi", wantErr: ErrEmptyName},
		{name: "bidi_message", author: "Ana", text: "\u202E \uFEFF", wantErr: ErrEmptyMessage},
		{name: "emoji_with_selector", author: "Ana", text: "\u2764\uFE0F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage("id-1", tt.author, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Message{}, m)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Message{ID: "id-1", Name: tt.author, Message: tt.text}, m)
		})
	}
}

func TestNewMessage_InvalidUTF8(t *testing.T) {
	m, err := NewMessage("id-1", "Ana\xff", "o\xc3i")
	require.NoError(t, err)

	assert.Equal(t, "Ana\uFFFD", m.Name)
	assert.Equal(t, "o\uFFFDi", m.Message)
	assert.True(t, utf8.ValidString(m.Name))
	assert.True(t, utf8.ValidString(m.Message))
}

func TestPrepend(t *testing.T) {
	list := []Message{{ID: "b"}, {ID: "c"}}

	got := Prepend(list, Message{ID: "a"})

	assert.Equal(t, []Message{{ID: "a"}, {ID: "b"}, {ID: "c"}}, got)
	assert.Equal(t, []Message{{ID: "b"}, {ID: "c"}}, list)

	assert.Equal(t, []Message{{ID: "a"}}, Prepend(nil, Message{ID: "a"}))
}

func makeList(n int) []Message {
	list := make([]Message, n)
	for i := range list {
		list[i] = Message{ID: fmt.Sprint(i), Name: "n", Message: "m"}
	}
	return list
}

func TestVisible(t *testing.T) {
	for n := 0; n <= 12; n++ {
		list := makeList(n)

		t.Run(fmt.Sprintf("len_%d", n), func(t *testing.T) {
			assert.Len(t, Visible(list, false, DefaultPreviewSize), min(DefaultPreviewSize, n))
			assert.Len(t, Visible(list, true, DefaultPreviewSize), n)
			assert.Equal(t, n > DefaultPreviewSize, CanToggle(list, DefaultPreviewSize))
		})
	}
}

func TestVisible_SixEntries(t *testing.T) {
	list := []Message{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}, {ID: "F"}}

	assert.Equal(t, list[:5], Visible(list, false, 5))
	assert.Equal(t, list, Visible(list, true, 5))
}

func TestClone(t *testing.T) {
	assert.NotNil(t, Clone(nil))
	assert.Empty(t, Clone(nil))

	src := []Message{{ID: "a"}}
	dst := Clone(src)
	dst[0].ID = "b"
	assert.Equal(t, "a", src[0].ID)
}
