package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/versa/internal/client/client"
	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Delegates(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{
		post:  &client.Post{ID: "p-1", CreditsUsed: 30},
		user:  &client.User{ID: "u-1", Credits: 70},
		posts: []client.Post{{ID: "p-1"}},
	}
	svc := NewPostService(fc)

	cost := 30
	post, user, err := svc.Create(ctx, "hi", &cost)
	require.NoError(t, err)
	assert.Equal(t, "p-1", post.ID)
	assert.Equal(t, 70, user.Credits)
	assert.Equal(t, &cost, fc.gotCost)

	_, err = svc.Edit(ctx, "p-1", "new")
	require.NoError(t, err)
	assert.Equal(t, "p-1", fc.gotID)

	_, err = svc.Delete(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, "p-2", fc.gotID)

	posts, err := svc.ListMine(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	fc.entries = []client.CreditEntry{{ID: "e-1", Kind: "debit", Amount: 30, BalanceAfter: 70}}
	entries, err := svc.Credits(ctx)
	require.NoError(t, err)
	assert.Equal(t, fc.entries, entries)

	fc.postErr = common.ErrForbidden
	_, err = svc.ListAll(ctx)
	assert.ErrorIs(t, err, common.ErrForbidden)
}
