// Package posts provides the local cache of remote posts.
//
// SQLiteRepository keeps posts in the posts table keyed by id. user_id is
// indexed but not enforced against users, so a post may point at a user
// that is not cached. ReplaceAll upserts a batch in one transaction.
package posts
