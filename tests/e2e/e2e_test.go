package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"testing"
	"time"
)

const baseURL = "http://localhost:8080"

func TestE2E_FullFlow(t *testing.T) {
	waitForService(t)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}

	username := fmt.Sprintf("e2e_%d", time.Now().UnixNano())
	password := "secret123"

	t.Log("Step 1: Register and start a session")
	form := fmt.Sprintf("username=%s&password=%s&password_confirm=%s", username, password, password)
	resp, err := client.Post(baseURL+"/register", "application/x-www-form-urlencoded", strings.NewReader(form))
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 1 Failed: Expected 200 after redirect, got %d", resp.StatusCode)
	}
	t.Log("Step 1: Success")

	t.Log("Step 2: List the player catalog")
	resp, err = client.Get(baseURL + "/api/jugadores")
	if err != nil {
		t.Fatalf("Failed to list players: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 2 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var players []struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		t.Fatal("Failed to decode players:", err)
	}
	t.Logf("Step 2: Success (%d players)", len(players))

	jugadores := make([]int64, 0, 2)
	for i, p := range players {
		if i == 2 {
			break
		}
		jugadores = append(jugadores, p.ID)
	}

	t.Log("Step 3: Create a team")
	reqBody, _ := json.Marshal(map[string]any{
		"tipo":      "ofensivo",
		"jugadores": jugadores,
	})
	resp, err = client.Post(baseURL+"/api/crear_equipo", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		t.Fatalf("Failed to create team: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 3 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var created struct {
		Success bool  `json:"success"`
		TeamID  int64 `json:"equipo_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal("Failed to decode create response:", err)
	}
	if !created.Success || created.TeamID == 0 {
		t.Fatalf("Step 3 Failed: success=%v equipo_id=%d", created.Success, created.TeamID)
	}
	t.Logf("Step 3: Success (equipo_id=%d)", created.TeamID)

	t.Log("Step 4: Read the team back")
	resp, err = client.Get(fmt.Sprintf("%s/api/equipos/%d", baseURL, created.TeamID))
	if err != nil {
		t.Fatalf("Failed to get team: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Step 4 Failed: Expected 200, got %d", resp.StatusCode)
	}

	var team struct {
		ID      int64            `json:"id"`
		Type    string           `json:"tipo"`
		Players []map[string]any `json:"jugadores"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&team); err != nil {
		t.Fatal("Failed to decode team:", err)
	}
	if team.Type != "ofensivo" {
		t.Errorf("Expected tipo ofensivo, got %s", team.Type)
	}
	if len(team.Players) != len(jugadores) {
		t.Errorf("Expected %d memberships, got %d", len(jugadores), len(team.Players))
	}
	t.Log("Step 4: Success")

	t.Log("Step 5: Logout closes the session")
	resp, err = client.Get(baseURL + "/logout")
	if err != nil {
		t.Fatalf("Failed to logout: %v", err)
	}
	resp.Body.Close()

	resp, err = client.Get(baseURL + "/api/jugadores")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Step 5 Failed: Expected 401 after logout, got %d", resp.StatusCode)
	}
	t.Log("Step 5: Success")
}

func waitForService(t *testing.T) {
	t.Log("Waiting for service to start...")
	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatal("Service did not start in time")
		case <-ticker.C:
			resp, err := http.Get(baseURL + "/health")
			if err == nil && resp.StatusCode == http.StatusOK {
				resp.Body.Close()
				t.Log("Service is UP!")
				return
			}
		}
	}
}
