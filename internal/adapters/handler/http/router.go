package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, tallyHandler *TallyHandler, userHandler *UserHandler, authHandler *AuthHandler, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/google/callback", authHandler.GoogleCallback)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.With(RequireAuth(jwtSecret)).Get("/me", userHandler.GetMe)

		r.Route("/polls", func(r chi.Router) {
			r.With(OptionalAuth(jwtSecret)).Post("/", pollHandler.CreatePoll)
			r.Get("/", pollHandler.ListPolls)
			r.Get("/{id}", pollHandler.GetPoll)
			r.Get("/{id}/results", tallyHandler.GetResults)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(jwtSecret))
				r.Post("/{id}/votes", voteHandler.VoteOnPoll)
				r.Get("/{id}/my-vote", voteHandler.GetMyVote)
			})
		})
	})

	return r
}
