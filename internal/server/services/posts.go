package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/versa/internal/common"
	"github.com/dmitrijs2005/versa/internal/dbx"
	"github.com/dmitrijs2005/versa/internal/logging"
	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/dmitrijs2005/versa/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CreditRecorder observes committed credit movements.
type CreditRecorder interface {
	CreditsDebited(n int)
	CreditsRefunded(n int)
}

type nopRecorder struct{}

func (nopRecorder) CreditsDebited(int)  {}
func (nopRecorder) CreditsRefunded(int) {}

// PostService runs the post lifecycle. Creating a post debits its cost from
// the author and deleting it refunds that cost to the owner; each balance
// change, the post mutation and the journal entry commit together or not
// at all.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       *Guard
	recorder    CreditRecorder
	log         logging.Logger
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager, guard *Guard, recorder CreditRecorder, log logging.Logger) *PostService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &PostService{
		db:          db,
		repomanager: m,
		guard:       guard,
		recorder:    recorder,
		log:         log.With("module", "posts"),
	}
}

// Create stores a post costing creditsUsed and returns it together with the
// author's new balance.
func (s *PostService) Create(ctx context.Context, actor *models.Account, content string, creditsUsed int) (*models.Post, *models.Account, error) {
	if actor == nil {
		return nil, nil, common.ErrAccountNotFound
	}
	if strings.TrimSpace(content) == "" || creditsUsed < 0 {
		return nil, nil, common.ErrInvalidInput
	}
	if actor.Credits < creditsUsed {
		return nil, nil, common.ErrInsufficientCredits
	}

	var (
		post  *models.Post
		owner *models.Account
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error

		// conditional update; a concurrent spend that got there first leaves
		// no row and aborts the whole transaction
		owner, err = s.repomanager.Accounts(tx).AdjustCredits(ctx, actor.ID, -creditsUsed)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrAccountNotFound
			}
			return err
		}

		post, err = s.repomanager.Posts(tx).Create(ctx, &models.Post{
			OwnerID:     actor.ID,
			Content:     content,
			CreditsUsed: creditsUsed,
		})
		if err != nil {
			return fmt.Errorf("error creating post: %w", err)
		}

		_, err = s.repomanager.Ledger(tx).Append(ctx, &models.CreditEntry{
			AccountID:    actor.ID,
			PostID:       post.ID,
			Kind:         models.CreditDebit,
			Amount:       creditsUsed,
			BalanceAfter: owner.Credits,
		})
		if err != nil {
			return fmt.Errorf("error writing ledger: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.recorder.CreditsDebited(creditsUsed)
	s.log.Info(ctx, "post created", "post_id", post.ID, "account_id", actor.ID, "credits_used", creditsUsed, "balance", owner.Credits)

	return post, owner, nil
}

// Edit replaces the content of a post. Credits are not affected.
func (s *PostService) Edit(ctx context.Context, actor *models.Account, postID, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrInvalidInput
	}

	if _, err := s.authorizedPost(ctx, actor, postID); err != nil {
		return nil, err
	}

	post, err := s.repomanager.Posts(s.db).UpdateContent(ctx, postID, content)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	s.log.Info(ctx, "post edited", "post_id", post.ID, "account_id", actor.ID)

	return post, nil
}

// Delete removes a post and refunds its recorded cost to the account that
// owns it, which is returned. The deleting admin is never credited.
func (s *PostService) Delete(ctx context.Context, actor *models.Account, postID string) (*models.Account, error) {
	if _, err := s.authorizedPost(ctx, actor, postID); err != nil {
		return nil, err
	}

	var (
		deleted *models.Post
		owner   *models.Account
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error

		// only one concurrent delete receives the row
		deleted, err = s.repomanager.Posts(tx).Delete(ctx, postID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrPostNotFound
			}
			return fmt.Errorf("error deleting post: %w", err)
		}

		owner, err = s.repomanager.Accounts(tx).AdjustCredits(ctx, deleted.OwnerID, deleted.CreditsUsed)
		if err != nil {
			return fmt.Errorf("error refunding credits: %w", err)
		}

		_, err = s.repomanager.Ledger(tx).Append(ctx, &models.CreditEntry{
			AccountID:    deleted.OwnerID,
			PostID:       deleted.ID,
			Kind:         models.CreditRefund,
			Amount:       deleted.CreditsUsed,
			BalanceAfter: owner.Credits,
		})
		if err != nil {
			return fmt.Errorf("error writing ledger: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recorder.CreditsRefunded(deleted.CreditsUsed)
	s.log.Info(ctx, "post deleted", "post_id", deleted.ID, "actor_id", actor.ID, "owner_id", owner.ID, "refund", deleted.CreditsUsed)

	return owner, nil
}

// ListMine returns the caller's posts, newest first.
func (s *PostService) ListMine(ctx context.Context, actor *models.Account) ([]models.Post, error) {
	if actor == nil {
		return nil, common.ErrAccountNotFound
	}
	posts, err := s.repomanager.Posts(s.db).ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

// ListAll returns every post, newest first. Admins only.
func (s *PostService) ListAll(ctx context.Context, actor *models.Account) ([]models.Post, error) {
	if err := s.guard.RequireAdmin(actor); err != nil {
		return nil, err
	}
	posts, err := s.repomanager.Posts(s.db).ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) authorizedPost(ctx context.Context, actor *models.Account, postID string) (*models.Post, error) {
	if actor == nil {
		return nil, common.ErrAccountNotFound
	}
	if _, err := uuid.Parse(postID); err != nil {
		return nil, common.ErrPostNotFound
	}

	post, err := s.repomanager.Posts(s.db).GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, fmt.Errorf("error loading post: %w", err)
	}

	if err := s.guard.AuthorizePostMutation(actor, post); err != nil {
		return nil, err
	}
	return post, nil
}
