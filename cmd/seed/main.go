package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	commoncrypto "github.com/AlibekovAA/course-advisor/backend/internal/common/crypto"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

type seedUser struct {
	id       userdomain.ID
	username string
	email    string
	password string
	enrolled []int64
}

var seedUsers = []seedUser{
	{1, "alice", "alice@example.com", "wonderland", []int64{1}},
	{2, "bob", "bob@example.com", "builder", []int64{1, 2}},
	{3, "carol", "carol@example.com", "carols", nil},
}

var seedCourses = []catalogdomain.Course{
	{ID: 1, Title: "Intro Go", Category: "Systems", Difficulty: "Beginner"},
	{ID: 2, Title: "Intro Rust", Category: "Systems", Difficulty: "Beginner"},
	{ID: 3, Title: "Oil Painting", Category: "Art", Difficulty: "Intermediate"},
	{ID: 4, Title: "Concurrency in Practice", Category: "Systems", Difficulty: "Advanced"},
	{ID: 5, Title: "Watercolor Basics", Category: "Art", Difficulty: "Beginner"},
	{ID: 6, Title: "Linear Algebra", Category: "Math", Difficulty: "Intermediate"},
}

func main() {
	out := flag.String("out", constants.DefaultDBFile, "path of the db.json file to write")
	flag.Parse()

	log := logger.NewWithWriter(os.Stdout, "seed", os.Getenv("LOG_LEVEL"))

	if err := run(context.Background(), *out, commoncrypto.NewBcryptHasher()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Infof("wrote %d users and %d courses to %s", len(seedUsers), len(seedCourses), *out)
}

func run(ctx context.Context, path string, hasher commoncrypto.PasswordHasher) error {
	users := make([]userdomain.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", su.username, err)
		}
		users = append(users, userdomain.User{
			ID:                su.id,
			Username:          su.username,
			Email:             su.email,
			PasswordHash:      hash,
			EnrolledCourseIDs: su.enrolled,
		})
	}

	if err := store.WriteFile(path, users, seedCourses); err != nil {
		return err
	}

	fs := store.NewFileStore(path)
	for _, su := range seedUsers {
		u, err := fs.FindByID(ctx, su.id)
		if err != nil {
			return fmt.Errorf("read back user %d: %w", su.id, err)
		}
		if !hasher.Verify(su.password, u.PasswordHash) {
			return fmt.Errorf("read back user %d: password does not verify", su.id)
		}
	}
	return nil
}
