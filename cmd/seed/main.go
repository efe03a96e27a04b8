// seed creates the initial manager account so a fresh deployment can sign in.
//
// Usage: go run ./cmd/seed -username admin -password <secret> [-name "Admin"] [-email admin@example.com]
// Connection settings come from the same environment variables as the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/karimbadr/mohasib-api/internal/domain"
	"github.com/karimbadr/mohasib-api/internal/domain/entity"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/postgres"
	"github.com/karimbadr/mohasib-api/pkg/config"
)

func main() {
	username := flag.String("username", "admin", "username of the manager account")
	password := flag.String("password", "", "password of the manager account (required)")
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "admin@example.com", "email address")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "seed: -password is required")
		os.Exit(1)
	}
	if len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "seed: password must be at least 6 characters")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: load configuration: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: hash password: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	user := &entity.User{
		Username:     *username,
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         entity.RoleManager,
		Active:       true,
	}
	if err := users.Create(user); err != nil {
		if err == domain.ErrUsernameTaken {
			fmt.Fprintf(os.Stderr, "seed: username %q already exists\n", *username)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "seed: create user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created manager account %q (id %s)\n", user.Username, user.ID)
}
