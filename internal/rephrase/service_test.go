package rephrase

import (
	"context"
	"errors"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Session{}, &Variant{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewService(NewRepo(db)), db
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateSession_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{
		OriginalText: "Hello world",
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if len(sess.SessionID) != 26 {
		t.Fatalf("expected 26-char ulid, got %q", sess.SessionID)
	}
	if sess.UserID != 1 {
		t.Fatalf("expected user id 1, got %d", sess.UserID)
	}
	if sess.OriginalText != "Hello world" {
		t.Fatalf("unexpected original text %q", sess.OriginalText)
	}
	if sess.Language != nil || sess.Context != nil {
		t.Fatalf("expected language/context unset")
	}
	if !sess.CreatedAt.Equal(sess.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at, got %v vs %v", sess.CreatedAt, sess.UpdatedAt)
	}
}

func TestCreateSession_EmptyTextRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "   "})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateSession_PartialUpdate(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{
		Language:     strPtr("en"),
		Context:      strPtr("academic"),
		OriginalText: "Old text",
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	updated, err := svc.UpdateSession(context.Background(), 1, sess.SessionID, UpdateSessionInput{
		OriginalText: strPtr("New text"),
	})
	if err != nil {
		t.Fatalf("update session: %v", err)
	}
	if updated.OriginalText != "New text" {
		t.Fatalf("expected updated text, got %q", updated.OriginalText)
	}
	if updated.Language == nil || *updated.Language != "en" {
		t.Fatalf("language should be untouched, got %v", updated.Language)
	}
	if updated.Context == nil || *updated.Context != "academic" {
		t.Fatalf("context should be untouched, got %v", updated.Context)
	}
	if !updated.CreatedAt.Equal(sess.CreatedAt) {
		t.Fatalf("created_at must not change")
	}
	if updated.UpdatedAt.Before(sess.UpdatedAt) {
		t.Fatalf("updated_at must be refreshed")
	}
}

func TestUpdateSession_NoFieldsRejected(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "Text"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	_, err = svc.UpdateSession(context.Background(), 1, sess.SessionID, UpdateSessionInput{})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOwnership_ForeignSessionsHidden(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "mine"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// user 2 must see NotFound everywhere, never the row
	if _, err := svc.UpdateSession(context.Background(), 2, sess.SessionID, UpdateSessionInput{
		OriginalText: strPtr("stolen"),
	}); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("update: expected session not found, got %v", err)
	}
	if _, err := svc.CreateVariant(context.Background(), 2, sess.SessionID, CreateVariantInput{
		Content: "v",
	}); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("create variant: expected session not found, got %v", err)
	}
	if _, err := svc.ListVariants(context.Background(), 2, sess.SessionID, false); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("list variants: expected session not found, got %v", err)
	}

	sessions, err := svc.ListSessions(context.Background(), 2)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("user 2 must not see user 1 sessions, got %d", len(sessions))
	}
}

func TestVariant_FavoriteFlow(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "text"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	variant, err := svc.CreateVariant(context.Background(), 1, sess.SessionID, CreateVariantInput{
		Content: "Variant A",
	})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}
	if variant.IsFavorite {
		t.Fatalf("is_favorite must default to false")
	}
	if len(variant.VariantID) != 26 {
		t.Fatalf("expected 26-char ulid, got %q", variant.VariantID)
	}

	favs, err := svc.ListVariants(context.Background(), 1, sess.SessionID, true)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 0 {
		t.Fatalf("expected no favorites yet, got %d", len(favs))
	}

	if _, err := svc.UpdateVariant(context.Background(), 1, sess.SessionID, variant.VariantID, UpdateVariantInput{
		IsFavorite: boolPtr(true),
	}); err != nil {
		t.Fatalf("favorite variant: %v", err)
	}

	favs, err = svc.ListVariants(context.Background(), 1, sess.SessionID, true)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].VariantID != variant.VariantID {
		t.Fatalf("expected exactly the favorited variant, got %d", len(favs))
	}
}

func TestUpdateVariant_NoFieldsRejected(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "text"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	variant, err := svc.CreateVariant(context.Background(), 1, sess.SessionID, CreateVariantInput{Content: "v"})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}

	_, err = svc.UpdateVariant(context.Background(), 1, sess.SessionID, variant.VariantID, UpdateVariantInput{})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateVariant_WrongSessionRejected(t *testing.T) {
	svc, _ := newTestService(t)

	sessA, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "a"})
	if err != nil {
		t.Fatalf("create session a: %v", err)
	}
	sessB, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "b"})
	if err != nil {
		t.Fatalf("create session b: %v", err)
	}

	variant, err := svc.CreateVariant(context.Background(), 1, sessA.SessionID, CreateVariantInput{Content: "v"})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}

	// valid variant id, but claimed under the wrong (still owned) session
	_, err = svc.UpdateVariant(context.Background(), 1, sessB.SessionID, variant.VariantID, UpdateVariantInput{
		Content: strPtr("changed"),
	})
	if !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected variant not found, got %v", err)
	}
}

func TestDeleteVariant_NotIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "text"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := svc.DeleteVariant(context.Background(), 1, sess.SessionID, "01NOPE0000000000000000000000"); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected variant not found for unknown id, got %v", err)
	}

	variant, err := svc.CreateVariant(context.Background(), 1, sess.SessionID, CreateVariantInput{Content: "v"})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}

	if err := svc.DeleteVariant(context.Background(), 1, sess.SessionID, variant.VariantID); err != nil {
		t.Fatalf("delete variant: %v", err)
	}

	items, err := svc.ListVariants(context.Background(), 1, sess.SessionID, false)
	if err != nil {
		t.Fatalf("list variants: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("deleted variant still listed")
	}

	if err := svc.DeleteVariant(context.Background(), 1, sess.SessionID, variant.VariantID); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestUpdateVariant_PartialUpdate(t *testing.T) {
	svc, _ := newTestService(t)

	sess, err := svc.CreateSession(context.Background(), 1, CreateSessionInput{OriginalText: "text"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	variant, err := svc.CreateVariant(context.Background(), 1, sess.SessionID, CreateVariantInput{
		Tone:    strPtr("formal"),
		Content: "Original variant",
	})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}

	updated, err := svc.UpdateVariant(context.Background(), 1, sess.SessionID, variant.VariantID, UpdateVariantInput{
		Complexity: strPtr("simple"),
	})
	if err != nil {
		t.Fatalf("update variant: %v", err)
	}
	if updated.Tone == nil || *updated.Tone != "formal" {
		t.Fatalf("tone should be untouched, got %v", updated.Tone)
	}
	if updated.Complexity == nil || *updated.Complexity != "simple" {
		t.Fatalf("complexity not applied, got %v", updated.Complexity)
	}
	if updated.Content != "Original variant" {
		t.Fatalf("content should be untouched, got %q", updated.Content)
	}
}
