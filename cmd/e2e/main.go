package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/movienight/internal/model"
	jwt_auth "github.com/humanbelnik/movienight/internal/service/auth/jwt"
)

func baseURL() string {
	env := os.Getenv("ENV")
	switch env {
	case "CI":
		return "http://movienight-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

func jwtSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "local-jwt-secret"
}

type session struct {
	client *http.Client
	token  string
}

func main() {
	fmt.Println("Starting E2E run for Movie Night API...")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if !waitForService(client) {
		os.Exit(1)
	}

	tokens := jwt_auth.New(jwtSecret())
	host := mustSession(client, tokens, "host-"+uuid.NewString()[:8]+"@example.com")
	guestEmail := "guest-" + uuid.NewString()[:8] + "@example.com"
	guest := mustSession(client, tokens, guestEmail)

	eventID, err := createEvent(host, guestEmail)
	if err != nil {
		fail("Create event", err)
	}
	fmt.Printf("Event created successfully. ID: %s\n", eventID)

	if err := respond(guest, eventID, "yes"); err != nil {
		fail("RSVP", err)
	}
	fmt.Println("Guest accepted the invitation")

	if err := vote(guest, eventID, 603, true); err != nil {
		fail("Vote", err)
	}
	if err := vote(host, eventID, 603, true); err != nil {
		fail("Vote", err)
	}
	fmt.Println("Votes cast")

	winner, err := summary(host, eventID)
	if err != nil {
		fail("Summary", err)
	}
	if winner != 603 {
		fail("Summary", fmt.Errorf("expected movie 603 to lead, got %d", winner))
	}
	fmt.Println("Summary reports the expected winner")

	if err := finalize(host, eventID, winner); err != nil {
		fail("Finalize", err)
	}
	fmt.Println("Movie finalized")

	fmt.Println("\n All E2E checks passed!")
}

func fail(step string, err error) {
	fmt.Printf("%s failed: %v\n", step, err)
	os.Exit(1)
}

func mustSession(client *http.Client, tokens *jwt_auth.Service, email string) *session {
	token, err := tokens.NewToken(model.User{ID: uuid.New(), Email: email}, time.Hour)
	if err != nil {
		fail("Token", err)
	}
	return &session{client: client, token: token}
}

func waitForService(client *http.Client) bool {
	fmt.Println(" Waiting for service to be ready...")

	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		resp, err := client.Get(baseURL() + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println(" Service is ready!")
				return true
			}
		}

		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

func (s *session) do(method, path string, body any, wantStatus int, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}
	}

	req, err := http.NewRequest(method, baseURL()+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, string(raw))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}

func createEvent(host *session, guestEmail string) (string, error) {
	fmt.Println("\n Step 1: Creating event...")

	req := map[string]any{
		"title":         "E2E movie night",
		"description":   "Created by the e2e run",
		"date":          time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		"location":      "Online",
		"movie_options": []int64{603, 550},
		"guests":        []string{guestEmail},
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := host.do(http.MethodPost, "/events", req, http.StatusCreated, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func respond(guest *session, eventID, status string) error {
	fmt.Println("\n Step 2: Responding to invitation...")
	return guest.do(http.MethodPost, "/events/"+eventID+"/respond_to_invitation",
		map[string]string{"status": status}, http.StatusOK, nil)
}

func vote(s *session, eventID string, movieID int64, yes bool) error {
	return s.do(http.MethodPost, "/events/"+eventID+"/vote",
		map[string]any{"movie_id": movieID, "vote": yes}, http.StatusOK, nil)
}

func summary(host *session, eventID string) (int64, error) {
	fmt.Println("\n Step 3: Reading summary...")

	var resp struct {
		WinningMovie *struct {
			MovieID int64 `json:"movie_id"`
		} `json:"winning_movie"`
	}
	if err := host.do(http.MethodGet, "/events/"+eventID+"/event_summary", nil, http.StatusOK, &resp); err != nil {
		return 0, err
	}
	if resp.WinningMovie == nil {
		return 0, fmt.Errorf("no winning movie")
	}
	return resp.WinningMovie.MovieID, nil
}

func finalize(host *session, eventID string, movieID int64) error {
	fmt.Println("\n Step 4: Finalizing movie...")
	return host.do(http.MethodPost, "/events/"+eventID+"/finalize_movie",
		map[string]int64{"movie_id": movieID}, http.StatusOK, nil)
}
