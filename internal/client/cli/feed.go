package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/leaguefeed/internal/client/models"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
)

// Posts prints the joined feed. It never fails: an unreachable remote shows
// up as an empty feed or as posts without authors.
func (a *App) Posts(ctx context.Context) error {
	feed, _ := a.feedService.PostsWithUsers(ctx)
	if len(feed) == 0 {
		fmt.Fprintln(a.out, "No posts")
		return nil
	}

	for _, p := range feed {
		author := p.UserName
		if author == "" {
			author = "unknown author"
		}
		fmt.Fprintf(a.out, "#%d %s\n   by %s\n   %s\n", p.ID, p.Title, author, p.Description)
	}
	return nil
}

func (a *App) Users(ctx context.Context) error {
	list, err := a.userService.Users(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Users unavailable")
		a.log.Error(ctx, "list users failed", "error", err)
		return err
	}

	for _, u := range list {
		fmt.Fprintln(a.out, formatUser(u))
	}
	return nil
}

// User shows one cached user and their cached posts. arg is the user id.
func (a *App) User(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid user id:", arg)
		return common.ErrorInvalidID
	}

	u, err := a.userService.UserByID(ctx, id)
	if err != nil {
		a.log.Error(ctx, "get user failed", "id", id, "error", err)
		return err
	}
	if u == nil {
		fmt.Fprintf(a.out, "User %d not found in cache (run 'users' first)\n", id)
		return common.ErrorNotFound
	}

	fmt.Fprintln(a.out, formatUser(*u))
	fmt.Fprintf(a.out, "   %s, %s %s\n   %s | %s\n", u.Address.Suite, u.Address.City, u.Address.Zipcode, u.Phone, u.Website)

	userPosts, err := a.userService.UserPosts(ctx, id)
	if err != nil {
		a.log.Error(ctx, "get user posts failed", "id", id, "error", err)
		return err
	}
	for _, p := range userPosts {
		fmt.Fprintf(a.out, "   - #%d %s\n", p.ID, p.Title)
	}
	return nil
}

// Purge drops cached users and posts. The next read fetches them again.
func (a *App) Purge(ctx context.Context) error {
	if err := a.cacheService.Purge(ctx); err != nil {
		a.log.Error(ctx, "purge failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Cache cleared")
	return nil
}

func formatUser(u models.User) string {
	s := fmt.Sprintf("#%d %s (@%s) %s", u.ID, u.Name, u.Username, u.Email)
	if u.Partial {
		s += " [cached]"
	}
	return s
}
