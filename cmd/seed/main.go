package main

import (
	"context"
	"errors"
	"log"
	"os"

	"notetaking-be/internal/bootstrap"
	"notetaking-be/internal/config"
	"notetaking-be/internal/dto"
	"notetaking-be/internal/model"
	"notetaking-be/internal/service"
	"notetaking-be/pkg/database"
)

const (
	authorUsername    = "author"
	notAuthorUsername = "not_author"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection, cfg.Database.LogLevel)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.AutoMigrate(db, model.All()...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "password123"
	}

	ctx := context.Background()

	for _, username := range []string{authorUsername, notAuthorUsername} {
		if err := seedUser(ctx, container.AuthService, username, password); err != nil {
			log.Fatalf("Error: failed to seed user %s: %v", username, err)
		}
	}

	if err := seedNote(ctx, container, password); err != nil {
		log.Fatal("Error: failed to seed note:", err)
	}

	count, err := container.NoteService.Count(ctx)
	if err != nil {
		log.Fatal("Error: failed to count notes:", err)
	}
	log.Printf("Seed completed, %d note(s) in store", count)
}

func seedUser(ctx context.Context, auth service.IAuthService, username, password string) error {
	_, err := auth.Register(ctx, &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
	if errors.Is(err, service.ErrUsernameTaken) {
		log.Printf("User %s already exists, skipping", username)
		return nil
	}
	if err == nil {
		log.Printf("Created user %s", username)
	}
	return err
}

func seedNote(ctx context.Context, c *bootstrap.Container, password string) error {
	login, err := c.AuthService.Login(ctx, &dto.LoginRequest{Username: authorUsername, Password: password})
	if err != nil {
		return err
	}

	note, err := c.NoteService.Create(ctx, login.User.Id, &dto.CreateNoteRequest{
		Title: "Test Note",
		Text:  "Note text",
	})
	var duplicateErr *service.DuplicateSlugError
	if errors.As(err, &duplicateErr) {
		log.Printf("Note %s already exists, skipping", duplicateErr.Slug)
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("Created note %s for %s", note.Slug, authorUsername)
	return nil
}
