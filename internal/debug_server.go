package internal

import (
	"embed"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"group-chat/errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

//go:embed inspect.html
var templatesFS embed.FS

var inspectTemplate = template.Must(template.ParseFS(templatesFS, "inspect.html"))

// InspectRow is one message as shown on the inspect page.
type InspectRow struct {
	Direction string
	ID        int
	From      string
	Protocol  string
	Kind      string
	Acks      string
	Body      string
}

type RowsProvider func() []InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Title string
	Items []InspectRow
	Stats map[string]any
}

// DebugServer serves a read-only view of a running peer:
// /inspect as an HTML page, /stats as JSON.
type DebugServer struct {
	log    *slog.Logger
	server *http.Server
}

func NewDebugServer(log *slog.Logger, title string, rows RowsProvider, stats StatsProvider) *DebugServer {
	router := mux.NewRouter()

	router.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		data := PageData{Title: title, Items: rows(), Stats: stats()}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := inspectTemplate.Execute(w, data); err != nil {
			log.Warn("Inspect page not rendered", "error", err)
		}
	}).Methods(http.MethodGet)

	router.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats()); err != nil {
			log.Warn("Stats not encoded", "error", err)
		}
	}).Methods(http.MethodGet)

	return &DebugServer{
		log:    log,
		server: &http.Server{Handler: router, ReadHeaderTimeout: 5 * time.Second},
	}
}

func (d *DebugServer) Handler() http.Handler {
	return d.server.Handler
}

// Start listens on address and serves in the background.
func (d *DebugServer) Start(address string) (net.Addr, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: debug server on %q: %v", errors.ErrIO, address, err)
	}
	go func() {
		if err := d.server.Serve(listener); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
			d.log.Warn("Debug server stopped", "error", err)
		}
	}()
	d.log.Info("Debug server started", "url", fmt.Sprintf("http://%s/inspect", listener.Addr()))
	return listener.Addr(), nil
}

func (d *DebugServer) Close() error {
	return d.server.Close()
}
