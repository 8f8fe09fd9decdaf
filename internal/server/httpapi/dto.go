package httpapi

import (
	"reflect"
	"strings"
	"time"

	"github.com/dmitrijs2005/versa/internal/server/models"
	"github.com/go-playground/validator/v10"
)

type userDTO struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`
	Role    string `json:"role"`
}

type postDTO struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Content     string    `json:"content"`
	CreditsUsed int       `json:"creditsUsed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type creditEntryDTO struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	Kind         string    `json:"kind"`
	Amount       int       `json:"amount"`
	BalanceAfter int       `json:"balanceAfter"`
	CreatedAt    time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  *userDTO `json:"user"`
}

type userResponse struct {
	User *userDTO `json:"user"`
}

type postResponse struct {
	Post *postDTO `json:"post"`
	User *userDTO `json:"user"`
}

type postsResponse struct {
	Posts []postDTO `json:"posts"`
}

type creditsResponse struct {
	Entries []creditEntryDTO `json:"entries"`
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createPostRequest struct {
	Content     string `json:"content" validate:"required"`
	CreditsUsed *int   `json:"creditsUsed" validate:"omitempty,min=0"`
}

type editPostRequest struct {
	Content string `json:"content" validate:"required"`
}

func toUser(a *models.Account) *userDTO {
	if a == nil {
		return nil
	}
	return &userDTO{ID: a.ID, Email: a.Email, Credits: a.Credits, Role: string(a.Role)}
}

func toPost(p *models.Post) *postDTO {
	if p == nil {
		return nil
	}
	return &postDTO{
		ID:          p.ID,
		UserID:      p.OwnerID,
		Content:     p.Content,
		CreditsUsed: p.CreditsUsed,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPosts(ps []models.Post) []postDTO {
	res := make([]postDTO, 0, len(ps))
	for i := range ps {
		res = append(res, *toPost(&ps[i]))
	}
	return res
}

func toCreditEntries(es []models.CreditEntry) []creditEntryDTO {
	res := make([]creditEntryDTO, 0, len(es))
	for _, e := range es {
		res = append(res, creditEntryDTO{
			ID:           e.ID,
			PostID:       e.PostID,
			Kind:         string(e.Kind),
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    e.CreatedAt,
		})
	}
	return res
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
