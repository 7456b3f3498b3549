// Package domain contains core concepts of the social network.
// This file defines the Message entity and its rules.
// A message's text can be edited in place; everything else is fixed at creation.
package domain

import (
	"time"

	"crafty/errors"
)

// Message is a piece of text published by an author at a fixed instant.
// Identity is carried by ID. Author and PublishedAt never change; only
// Text may be replaced through EditText.
type Message struct {
	ID          string
	Author      string
	Text        string
	PublishedAt time.Time
}

// NewMessage builds a valid Message. Empty text is rejected.
func NewMessage(id, author, text string, publishedAt time.Time) (Message, error) {
	if text == "" {
		return Message{}, errors.ErrEmptyMessage
	}
	return Message{
		ID:          id,
		Author:      author,
		Text:        text,
		PublishedAt: publishedAt,
	}, nil
}

// EditText replaces the message text. The publication time is NOT
// refreshed: an edited message keeps its original position in a timeline.
func (m *Message) EditText(text string) error {
	if text == "" {
		return errors.ErrEmptyMessage
	}
	m.Text = text
	return nil
}
