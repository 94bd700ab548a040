package guestbook

import (
	"errors"
	"strings"
)

const DefaultPreviewSize = 5

var (
	ErrEmptyName    = errors.New("name is empty")
	ErrEmptyMessage = errors.New("message is empty")
)

// Message - запись гостевой книги, после создания не меняется.
type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// NewMessage проверяет поля после trim, но сохраняет текст как его ввели.
// Невалидный UTF-8 заменяется на U+FFFD, как это сделал бы json при сохранении.
func NewMessage(id, name, text string) (Message, error) {
	name = strings.ToValidUTF8(name, "\uFFFD")
	text = strings.ToValidUTF8(text, "\uFFFD")

	if isBlank(name) {
		return Message{}, ErrEmptyName
	}
	if isBlank(text) {
		return Message{}, ErrEmptyMessage
	}

	return Message{ID: id, Name: name, Message: text}, nil
}

// Prepend не трогает исходный срез.
func Prepend(list []Message, m Message) []Message {
	out := make([]Message, 0, len(list)+1)
	out = append(out, m)
	return append(out, list...)
}

func Visible(list []Message, showAll bool, limit int) []Message {
	if showAll || limit <= 0 || len(list) <= limit {
		return list
	}

	return list[:limit]
}

func CanToggle(list []Message, limit int) bool {
	return limit > 0 && len(list) > limit
}

func Clone(list []Message) []Message {
	if list == nil {
		return []Message{}
	}

	out := make([]Message, len(list))
	copy(out, list)
	return out
}
