// Command seed loads users and reviews from a YAML file into a running API.
//
//	seed -file seed.yml -api http://localhost:8080
//
// The file may hold {users: [...], reviews: [...]}. Each entry is posted on
// its own; failures are reported and the command exits 2 if any occurred.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	api := flag.String("api", envOr("API_BASE", "http://localhost:8080"), "API base URL")
	file := flag.String("file", envOr("SEED_FILE", "seed.yml"), "YAML seed file")
	flag.Parse()

	data, err := loadSeed(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}
	if len(data.Users) == 0 && len(data.Reviews) == 0 {
		fmt.Println("Nothing to seed.")
		return
	}

	s := seeder{base: strings.TrimRight(*api, "/"), cli: &http.Client{Timeout: 15 * time.Second}}
	if failed := s.run(data); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d entries failed\n", failed)
		os.Exit(2)
	}
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
