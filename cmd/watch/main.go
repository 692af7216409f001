package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/humanbelnik/movienight/internal/model"
)

type liveUpdate struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func main() {
	var baseURL, eventID, token string
	flag.StringVar(&baseURL, "base-url", "http://localhost:8080", "server address")
	flag.StringVar(&eventID, "event", "", "event id to watch")
	flag.StringVar(&token, "token", os.Getenv("MOVIENIGHT_TOKEN"), "bearer token")
	flag.Parse()

	if eventID == "" || token == "" {
		fmt.Println("usage: watch -event <id> -token <jwt>")
		os.Exit(2)
	}

	conn, err := connectWebSocket(baseURL, eventID, token)
	if err != nil {
		fmt.Printf("websocket connection failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Printf("watching event %s\n", eventID)

	done := make(chan struct{})
	go listenWebSocket(conn, done)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	case <-done:
	}
}

func connectWebSocket(baseURL, eventID, token string) (*websocket.Conn, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %v", err)
	}

	scheme := "ws"
	if base.Scheme == "https" {
		scheme = "wss"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   base.Host,
		Path:   fmt.Sprintf("/api/v1/events/%s/live", eventID),
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%v (status %d)", err, resp.StatusCode)
		}
		return nil, err
	}
	return conn, nil
}

func listenWebSocket(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	for {
		var u liveUpdate
		if err := conn.ReadJSON(&u); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				fmt.Printf("websocket error: %v\n", err)
			}
			return
		}

		switch u.Type {
		case model.UpdateVoteCast:
			fmt.Printf("vote cast: %s\n", u.Payload)
		case model.UpdateRSVP:
			fmt.Printf("rsvp: %s\n", u.Payload)
		case model.UpdateInvitationsChanged:
			fmt.Printf("guest list changed: %s\n", u.Payload)
		case model.UpdateMovieFinalized:
			fmt.Printf("movie finalized: %s\n", u.Payload)
		case model.UpdateEventDeleted:
			fmt.Println("event deleted")
			return
		default:
			fmt.Printf("%s: %s\n", u.Type, u.Payload)
		}
	}
}
