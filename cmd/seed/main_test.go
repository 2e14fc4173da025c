package main

import (
	"context"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	commoncrypto "github.com/AlibekovAA/course-advisor/backend/internal/common/crypto"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
)

func TestRun_WritesReadableStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	if err := run(context.Background(), path, commoncrypto.NewBcryptHasherWithCost(bcrypt.MinCost)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	fs := store.NewFileStore(path)
	courses, err := fs.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(courses) != len(seedCourses) {
		t.Errorf("expected %d courses, got %d", len(seedCourses), len(courses))
	}

	alice, err := fs.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find alice: %v", err)
	}
	if alice.PasswordHash == "wonderland" {
		t.Error("password must be stored hashed")
	}
}
