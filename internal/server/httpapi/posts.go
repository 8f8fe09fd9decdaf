package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	account, err := s.accounts.Me(r.Context(), accountFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, userResponse{User: toUser(account)})
}

func (s *Server) credits(w http.ResponseWriter, r *http.Request) {
	entries, err := s.accounts.Credits(r.Context(), accountFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, creditsResponse{Entries: toCreditEntries(entries)})
}

func (s *Server) listMine(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListMine(r.Context(), accountFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, postsResponse{Posts: toPosts(posts)})
}

func (s *Server) listAll(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListAll(r.Context(), accountFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, postsResponse{Posts: toPosts(posts)})
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	cost := s.opts.DefaultPostCost
	if req.CreditsUsed != nil {
		cost = *req.CreditsUsed
	}

	post, owner, err := s.posts.Create(r.Context(), accountFrom(r.Context()), req.Content, cost)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, postResponse{Post: toPost(post), User: toUser(owner)})
}

func (s *Server) editPost(w http.ResponseWriter, r *http.Request) {
	var req editPostRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	actor := accountFrom(r.Context())
	post, err := s.posts.Edit(r.Context(), actor, chi.URLParam(r, "id"), req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, postResponse{Post: toPost(post), User: toUser(actor)})
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	owner, err := s.posts.Delete(r.Context(), accountFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, postResponse{Post: nil, User: toUser(owner)})
}
