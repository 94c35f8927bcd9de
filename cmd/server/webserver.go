package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer creates the http server serving files in the ./static folder
// plus the /ws websocket endpoint that drives an interactive render
// session per connection.
func webServer(port int, cfg sessionConfig) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler accepts the websocket upgrade and hands the connection
// to a session, which owns it until the client disconnects.
func websocketHandler(cfg sessionConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("got connection from: %s", r.RemoteAddr)
		s := newSession(cfg)
		defer s.close()
		if err := s.serve(r.Context(), c); err != nil {
			log.Printf("session %s ended: %v", r.RemoteAddr, err)
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}
