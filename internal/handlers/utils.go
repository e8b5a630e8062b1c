package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gotodo/webapp/internal/session"
)

type contextKey string

const contextSessionKey contextKey = "session"

// genericErrorMessage is shown for store failures; the real cause is logged,
// never rendered.
const genericErrorMessage = "Something went wrong. Please try again."

func sessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(contextSessionKey).(session.Session)
	return sess, ok
}

// redirect sends a 303 so a redirected POST is re-requested as a GET.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// redirectWithMsg redirects to path carrying a banner message in the msg
// query parameter.
func redirectWithMsg(w http.ResponseWriter, r *http.Request, path, msg string) {
	q := url.Values{}
	q.Set("msg", msg)
	redirect(w, r, path+"?"+q.Encode())
}

// Healthz reports process liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
