package main

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"mazadWeb/internal/handlers"
	"mazadWeb/internal/models"
	"mazadWeb/internal/session"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// loadSession resolves the sealed cookie into the stored session and puts
// it on the request context. When the access token has expired the token
// pair is refreshed against the platform exactly once; if the refresh
// token is gone too the session is dropped and the request proceeds
// anonymously.
func (app *application) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := app.sessionCookie.Read(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := app.sessions.Get(r.Context(), id)
		if err != nil {
			if !session.IsNotFound(err) {
				app.errorLog.Printf("load session: %v", err)
			}
			app.sessionCookie.Clear(w)
			next.ServeHTTP(w, r)
			return
		}

		if sess.Expired(time.Now()) {
			tokens, err := app.platform.RefreshTokens(r.Context(), sess.Tokens.RefreshToken)
			if err != nil {
				if err := app.sessions.Delete(r.Context(), sess.ID); err != nil {
					app.errorLog.Printf("drop stale session: %v", err)
				}
				app.sessionCookie.Clear(w)
				next.ServeHTTP(w, r)
				return
			}
			sess, err = app.sessions.UpdateTokens(r.Context(), sess.ID, tokens)
			if err != nil {
				app.errorLog.Printf("store refreshed tokens: %v", err)
				next.ServeHTTP(w, r)
				return
			}
		}

		if err := app.sessions.Touch(r.Context(), sess.ID); err != nil {
			app.errorLog.Printf("touch session: %v", err)
		}

		ctx := context.WithValue(r.Context(), handlers.SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession rejects anonymous requests. Mutating verbs must also
// echo the session's CSRF secret in X-CSRF-Token; the cookie alone never
// authorizes a write.
func (app *application) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := r.Context().Value(handlers.SessionKey).(models.Session)
		if !ok {
			handlers.Unauthorized(w)
			return
		}
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			if r.Header.Get("X-CSRF-Token") != sess.CSRFSecret {
				handlers.CSRFRejected(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole gates a route on one of the role predicates, for example
// app.requireRole(models.Role.CanBid).
func (app *application) requireRole(allowed func(models.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := r.Context().Value(handlers.SessionKey).(models.Session)
			if !ok {
				handlers.Unauthorized(w)
				return
			}
			if !allowed(sess.User.Role) {
				handlers.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
