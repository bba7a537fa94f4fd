// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package board

import "time"

// Status is the answer-progress label shown next to every post.
type Status string

const (
	// StatusUnderReview marks a post still waiting on the studio.
	StatusUnderReview Status = "검토중"
	// StatusAnswered marks a post whose latest turn was an admin reply.
	StatusAnswered Status = "답변완료"
)

// ReplyAuthor distinguishes who wrote a reply in a thread.
type ReplyAuthor string

const (
	ReplyAuthorAdmin ReplyAuthor = "admin"
	ReplyAuthorUser  ReplyAuthor = "user"
)

// Reply is one turn in a post's thread. Replies are append-only and keep
// chronological order.
type Reply struct {
	ID      string      `json:"id"`
	Author  ReplyAuthor `json:"author"`
	Content string      `json:"content"`
	Date    string      `json:"date"`
}

// Post is an inquiry-board thread. The author name is stored already masked;
// the raw name is never persisted. The viewing password is write-only and
// never leaves the server.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Date      string    `json:"date"`
	Status    Status    `json:"status"`
	IsPrivate bool      `json:"isPrivate"`
	Content   string    `json:"content,omitempty"`
	Replies   []Reply   `json:"replies,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Summary strips the gated parts of a private post for list views. Public
// posts pass through unchanged.
func (post Post) Summary() Post {
	if !post.IsPrivate {
		return post
	}
	post.Content = ""
	post.Replies = nil
	return post
}

// Validation field identifiers.
const (
	FieldTitle    = "title"
	FieldAuthor   = "author"
	FieldContent  = "content"
	FieldPassword = "password"
)

// DateLayout is the calendar-date format stamped on posts and replies.
const DateLayout = "2006-01-02"
