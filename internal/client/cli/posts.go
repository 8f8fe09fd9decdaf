package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/versa/internal/client/client"
)

var (
	errUsageEdit   = errors.New("usage: edit <id>")
	errUsageDelete = errors.New("usage: delete <id>")
	errBadCost     = errors.New("cost must be a non-negative integer")
	errEmptyPost   = errors.New("content must not be empty")
)

// Post publishes a post. An optional first argument overrides the server's
// default cost.
func (a *App) Post(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	var cost *int
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return errBadCost
		}
		cost = &n
	}

	content, err := GetMultiline(a.reader, "Enter post content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return errEmptyPost
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	post, user, err := a.postService.Create(ctx, content, cost)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Posted %s for %d credits, %d left\n", post.ID, post.CreditsUsed, user.Credits)
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}
	if len(args) != 1 {
		return errUsageEdit
	}

	content, err := GetMultiline(a.reader, "Enter new content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		return errEmptyPost
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	post, err := a.postService.Edit(ctx, args[0], content)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %s\n", post.ID)
	return nil
}

// Delete removes a post. The refund goes to the post's owner, so the
// caller's balance only changes when they own the post.
func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}
	if len(args) != 1 {
		return errUsageDelete
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	owner, err := a.postService.Delete(ctx, args[0])
	if err != nil {
		return err
	}

	if owner != nil && owner.ID == a.user.ID {
		a.user = owner
	}
	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	return nil
}

func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	posts, err := a.postService.ListMine(ctx)
	if err != nil {
		return err
	}
	a.printPosts(posts, false)
	return nil
}

func (a *App) All(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	posts, err := a.postService.ListAll(ctx)
	if err != nil {
		return err
	}
	a.printPosts(posts, true)
	return nil
}

// Credits prints the caller's credit journal.
func (a *App) Credits(ctx context.Context) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	ctx, cancel := a.callCtx(ctx)
	defer cancel()

	entries, err := a.postService.Credits(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No credit history")
		return nil
	}
	for _, e := range entries {
		sign := "-"
		if e.Kind == "refund" {
			sign = "+"
		}
		fmt.Fprintf(a.out, "%s\t%s%d\tbalance=%d\tpost=%s\n", e.CreatedAt.Format(time.DateTime), sign, e.Amount, e.BalanceAfter, e.PostID)
	}
	return nil
}

func (a *App) printPosts(posts []client.Post, withOwner bool) {
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts")
		return
	}
	for _, p := range posts {
		first, _, _ := strings.Cut(p.Content, "\n")
		if withOwner {
			fmt.Fprintf(a.out, "%s\t%s\towner=%s\tcost=%d\t%s\n", p.ID, p.CreatedAt.Format(time.DateTime), p.UserID, p.CreditsUsed, first)
		} else {
			fmt.Fprintf(a.out, "%s\t%s\tcost=%d\t%s\n", p.ID, p.CreatedAt.Format(time.DateTime), p.CreditsUsed, first)
		}
	}
}
