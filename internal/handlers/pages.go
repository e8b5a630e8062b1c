package handlers

import (
	"net/http"

	"github.com/gotodo/webapp/internal/web"
	"go.uber.org/zap"
)

type homeView struct {
	PageTitle string
	AppName   string
	Message   string
}

// Home renders the public landing page. It accepts a msg query parameter so
// logout can surface its confirmation banner here.
func Home(renderer *web.Renderer, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := homeView{
			PageTitle: "Todo App Dashboard",
			AppName:   "My Todo Application",
			Message:   r.URL.Query().Get("msg"),
		}
		if err := renderer.Render(w, http.StatusOK, "index", view); err != nil {
			log.Error("render home failed", zap.Error(err))
		}
	}
}
