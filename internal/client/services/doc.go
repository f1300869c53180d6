// Package services contains the use cases behind the CLI commands.
//
// The feed join (FeedService.PostsWithUsers) never fails. It fetches posts
// and users concurrently and degrades instead of erroring: without users it
// returns bare posts, without posts it returns an empty feed. Callers cannot
// tell an empty remote from an unreachable one; failures are only logged.
// Callers who need the failure use the raw repositories instead.
package services
