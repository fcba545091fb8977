// Seed tool: fills the database with demo users and posts through the same
// services the API uses, so every uniqueness and ownership rule applies.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/krishkalaria12/blog-serve/config"
	"github.com/krishkalaria12/blog-serve/database"
	"github.com/krishkalaria12/blog-serve/models"
	"github.com/krishkalaria12/blog-serve/services"
)

var words = []string{
	"go", "fiber", "gorm", "postgres", "notes", "weekend", "coffee", "travel",
	"release", "design", "garden", "music", "reading", "debugging", "sunrise",
}

func main() {
	var numUsers int
	var postsPerUser int
	flag.IntVar(&numUsers, "users", 5, "number of users")
	flag.IntVar(&postsPerUser, "posts", 3, "posts per user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(database.Options{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL, LogLevel: "silent"})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer database.Close(db)

	if err := database.MigrateModels(db, &models.User{}, &models.Post{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	users := services.NewUserService(db)
	posts := services.NewPostService(db)

	start := time.Now()
	created, skipped := 0, 0
	for i := 1; i <= numUsers; i++ {
		username := fmt.Sprintf("user%d", i)
		user, err := users.Create(ctx, models.CreateUserParams{
			Username: username,
			Email:    username + "@example.com",
		})
		if errors.Is(err, services.ErrConflict) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("create %s: %v", username, err)
		}

		for j := 0; j < postsPerUser; j++ {
			_, err := posts.Create(ctx, models.CreatePostParams{
				Title:   sentence(r, 3),
				Content: sentence(r, 20),
				UserID:  user.ID,
			})
			if err != nil {
				log.Fatalf("create post for %s: %v", username, err)
			}
		}
		created++
	}

	log.Printf("seeded %d users (%d already present) in %s", created, skipped, time.Since(start).Truncate(time.Millisecond))
}

func sentence(r *rand.Rand, n int) string {
	b := make([]byte, 0, n*8)
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, words[r.Intn(len(words))]...)
	}
	return string(b)
}
