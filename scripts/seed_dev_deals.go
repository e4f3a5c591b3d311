//go:build ignore

// Seeds the development database with deals, comments and votes through the
// service layer, so every row passes the same validation the API applies.
//
//	go run scripts/seed_dev_deals.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/lib/pq"

	"Dealio/internal/config"
	"Dealio/internal/core/categories"
	"Dealio/internal/core/comments"
	"Dealio/internal/core/posts"
	"Dealio/internal/core/votes"
	postgresRepo "Dealio/internal/db/postgres"
)

var userNames = []string{
	"sarah_jenkins", "michael_chen", "jessica_rodriguez", "david_nguyen",
	"emily_williams", "james_patel", "ashley_garcia", "robert_kim",
	"jennifer_lee", "william_martinez", "amanda_johnson", "daniel_brown",
}

var dealTitles = []string{
	"Half price paperback bundle",
	"Two streaming months for one",
	"Noise cancelling headphones 40% off",
	"Buy one get one coffee beans",
	"Winter jackets clearance",
	"Skincare starter kit discount",
	"Mechanical keyboard flash sale",
	"Free dessert with any entree",
}

var commentTexts = []string{
	"Grabbed one, thanks for posting!",
	"Code still works as of this morning.",
	"Shipping cost eats most of the savings for me.",
	"Price went back up already :(",
	"Great find, sharing with my roommate.",
	"Is this in-store only or online too?",
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database successfully!")

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	categoryService, err := categories.NewService(postgresRepo.NewCategoryRepository(db), nil)
	if err != nil {
		log.Fatalf("Failed to load categories: %v", err)
	}
	postService := posts.NewPostService(postgresRepo.NewPostRepository(db), categoryService, cfg.PostsPerPage, nil)
	voteService := votes.NewService(postgresRepo.NewVoteRepository(db), nil)
	commentService := comments.NewCommentService(postgresRepo.NewCommentRepository(db), postgresRepo.NewTargetValidator(db),
		comments.Options{PerPage: cfg.CommentsPerPage, MaxRecent: cfg.MaxRecentComments}, nil)

	log.Println("=== Creating Posts ===")
	today := time.Now().UTC()
	created := make([]*posts.Post, 0, len(dealTitles))
	for i, title := range dealTitles {
		author := userNames[rng.Intn(len(userNames))]
		start := today.AddDate(0, 0, -rng.Intn(7))
		url := fmt.Sprintf("https://shop.example.com/deals/%d", i+1)
		post, err := postService.CreatePost(ctx, author, posts.CreatePostRequest{
			Title:     title,
			Category:  categories.Names[i%len(categories.Names)],
			StartDate: start.Format(posts.DateLayout),
			EndDate:   start.AddDate(0, 0, 7+rng.Intn(21)).Format(posts.DateLayout),
			URL:       &url,
		})
		if err != nil {
			log.Printf("Warning: Failed to create post %q: %v", title, err)
			continue
		}
		created = append(created, post)
		log.Printf("Created post %d by %s: %s", post.ID, author, title)
	}

	log.Println("=== Creating Comments and Votes ===")
	totalComments, totalVotes := 0, 0
	for _, post := range created {
		for i := 0; i < 2+rng.Intn(5); i++ {
			author := userNames[rng.Intn(len(userNames))]
			text := commentTexts[rng.Intn(len(commentTexts))]
			if _, err := commentService.CreateComment(ctx, post.ID, author, comments.CommentRequest{Text: text}); err != nil {
				log.Printf("Warning: Failed to comment on post %d: %v", post.ID, err)
				continue
			}
			totalComments++
		}

		for _, voter := range userNames {
			if rng.Intn(3) == 0 {
				continue
			}
			direction := votes.DirectionIncrement
			if rng.Intn(4) == 0 {
				direction = votes.DirectionDecrement
			}
			if _, err := voteService.CastVote(ctx, post.ID, voter, direction); err != nil {
				log.Printf("Warning: Failed to vote on post %d as %s: %v", post.ID, voter, err)
				continue
			}
			totalVotes++
		}
	}

	log.Printf("Seeded %d posts, %d comments and %d votes", len(created), totalComments, totalVotes)
}
