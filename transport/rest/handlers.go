package rest

import (
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type viewer interface {
	View() entity.View
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	ViewHandler(w http.ResponseWriter, _ *http.Request)
}

type handlers struct {
	viewer viewer
}

func NewHandlers(viewer viewer) Handlers {
	return &handlers{
		viewer: viewer,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// ViewHandler returns what the client currently shows as JSON.
func (that *handlers) ViewHandler(w http.ResponseWriter, _ *http.Request) {
	viewJSON, err := json.Marshal(that.viewer.View())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(viewJSON)
}
