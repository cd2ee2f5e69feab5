package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type seedUser struct {
	Username string `yaml:"username" json:"username"`
	Email    string `yaml:"email" json:"email"`
	Password string `yaml:"password" json:"password"`
	Role     string `yaml:"role" json:"role"`
}

type seedReview struct {
	Rating  int    `yaml:"rating" json:"rating"`
	Comment string `yaml:"comment" json:"comment"`
}

type seedFile struct {
	Users   []seedUser   `yaml:"users"`
	Reviews []seedReview `yaml:"reviews"`
}

func loadSeed(path string) (seedFile, error) {
	var out seedFile
	b, err := os.ReadFile(path)
	if err != nil {
		return out, err
	}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return out, err
	}
	for i := range out.Users {
		out.Users[i].Username = strings.TrimSpace(out.Users[i].Username)
		out.Users[i].Email = strings.TrimSpace(out.Users[i].Email)
		if out.Users[i].Role == "" {
			out.Users[i].Role = "customer"
		}
	}
	return out, nil
}

type seeder struct {
	base string
	cli  *http.Client
}

// run posts every entry and returns how many failed.
func (s seeder) run(data seedFile) int {
	failed := 0
	for _, u := range data.Users {
		// minimal validation
		if u.Username == "" || u.Email == "" {
			fmt.Fprintf(os.Stderr, "Skipping incomplete user: %+v\n", u)
			continue
		}
		if err := s.post("/user/RegisterUser", u); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed to register %s: %v\n", u.Username, err)
		} else {
			fmt.Printf("Registered %s <%s>\n", u.Username, u.Email)
		}
	}
	for i, r := range data.Reviews {
		if err := s.post("/review/AddReview", r); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed to add review #%d: %v\n", i+1, err)
		} else {
			fmt.Printf("Added review #%d (rating %d)\n", i+1, r.Rating)
		}
	}
	return failed
}

func (s seeder) post(path string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	resp, err := s.cli.Post(s.base+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
