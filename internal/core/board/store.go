// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package board

import "context"

// # Board Data Access

// Repository defines the data access contract for inquiry-board posts.
// Implementations assign ids from a strictly increasing sequence so that a
// deleted id is never handed out again.
type Repository interface {

	/*
		List returns every post, newest first.

		Parameters:
		  - context: context.Context

		Returns:
		  - []Post: Posts in descending id order
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]Post, error)

	/*
		FindByID returns the post with the given id.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Post: The hydrated thread including replies
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Post, error)

	/*
		Insert persists a new post and assigns its id in place.

		Parameters:
		  - context: context.Context
		  - post: *Post (ID is populated on return)

		Returns:
		  - error: Database persistence failures
	*/
	Insert(context context.Context, post *Post) error

	/*
		Update rewrites the mutable fields of an existing post: its status
		and reply thread.

		Parameters:
		  - context: context.Context
		  - post: Post

		Returns:
		  - error: ErrNotFound if the id no longer exists
	*/
	Update(context context.Context, post Post) error

	/*
		Delete hard-removes a post. There is no tombstone; the id simply
		retires.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: ErrNotFound if the id does not exist
	*/
	Delete(context context.Context, id int64) error
}
