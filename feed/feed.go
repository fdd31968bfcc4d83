// Package feed implements the state transitions for a list of posts. Every
// function takes the current list and returns the next one without mutating
// its input, so views that compare values to detect change keep working.
package feed

import "chucklechain/domain"

// AddPost prepends p. The main feed displays newest first; category and
// profile feeds keep their fetched order and never re-sort on add.
func AddPost(posts []domain.Post, p domain.Post) []domain.Post {
	out := make([]domain.Post, 0, len(posts)+1)
	out = append(out, p)
	return append(out, posts...)
}

// DeletePost removes the post with the given id. Unknown ids are a no-op and
// return the input list unchanged.
func DeletePost(posts []domain.Post, id string) []domain.Post {
	for i, p := range posts {
		if p.ID == id {
			out := make([]domain.Post, 0, len(posts)-1)
			out = append(out, posts[:i]...)
			return append(out, posts[i+1:]...)
		}
	}
	return posts
}

// ToggleLike flips IsLiked on the matching post and moves Likes with it:
// +1 when liking, -1 when unliking, never below zero. Only the matched
// element is replaced by a new value; all other posts are shared.
func ToggleLike(posts []domain.Post, id string) []domain.Post {
	for i, p := range posts {
		if p.ID != id {
			continue
		}
		if p.IsLiked {
			p.IsLiked = false
			if p.Likes > 0 {
				p.Likes--
			}
		} else {
			p.IsLiked = true
			p.Likes++
		}
		out := make([]domain.Post, len(posts))
		copy(out, posts)
		out[i] = p
		return out
	}
	return posts
}

// AddComment appends c to the matching post's comments, preserving all prior
// comments and their order. Comment ids are caller-supplied and assumed
// unique within the post. Unknown post ids are a no-op.
func AddComment(posts []domain.Post, id string, c domain.Comment) []domain.Post {
	for i, p := range posts {
		if p.ID != id {
			continue
		}
		comments := make([]domain.Comment, 0, len(p.Comments)+1)
		comments = append(comments, p.Comments...)
		p.Comments = append(comments, c)
		out := make([]domain.Post, len(posts))
		copy(out, posts)
		out[i] = p
		return out
	}
	return posts
}
