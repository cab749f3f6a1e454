package rephrase

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

type CreateSessionInput struct {
	Language     *string
	Context      *string
	OriginalText string
}

type UpdateSessionInput struct {
	Language     *string
	Context      *string
	OriginalText *string
}

type CreateVariantInput struct {
	Tone         *string
	Complexity   *string
	VariantLabel *string
	Content      string
	IsFavorite   *bool
}

type UpdateVariantInput struct {
	Tone         *string
	Complexity   *string
	VariantLabel *string
	Content      *string
	IsFavorite   *bool
}

func (s *Service) CreateSession(ctx context.Context, userID uint64, in CreateSessionInput) (*Session, error) {
	if strings.TrimSpace(in.OriginalText) == "" {
		return nil, validationErr("original_text is required")
	}

	sid, err := NewSessionID()
	if err != nil {
		return nil, err
	}

	session := &Session{
		SessionID:    sid,
		UserID:       userID,
		Language:     in.Language,
		Context:      in.Context,
		OriginalText: in.OriginalText,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) UpdateSession(ctx context.Context, userID uint64, sessionID string, in UpdateSessionInput) (*Session, error) {
	if in.Language == nil && in.Context == nil && in.OriginalText == nil {
		return nil, validationErr("at least one of language, context or original_text is required")
	}
	if in.OriginalText != nil && strings.TrimSpace(*in.OriginalText) == "" {
		return nil, validationErr("original_text must not be empty")
	}

	// ownership check: id AND owner in one filter
	if _, err := s.resolveOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Language != nil {
		fields["language"] = *in.Language
	}
	if in.Context != nil {
		fields["context"] = *in.Context
	}
	if in.OriginalText != nil {
		fields["original_text"] = *in.OriginalText
	}

	// GORM refreshes updated_at on every Updates call
	rows, err := s.repo.UpdateOwnedSession(ctx, userID, sessionID, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrSessionNotFound
	}

	return s.resolveOwnedSession(ctx, userID, sessionID)
}

func (s *Service) ListSessions(ctx context.Context, userID uint64) ([]Session, error) {
	return s.repo.ListSessions(ctx, userID)
}

func (s *Service) CreateVariant(ctx context.Context, userID uint64, sessionID string, in CreateVariantInput) (*Variant, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, validationErr("content is required")
	}

	if _, err := s.resolveOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	vid, err := NewVariantID()
	if err != nil {
		return nil, err
	}

	variant := &Variant{
		VariantID:    vid,
		SessionID:    sessionID,
		Tone:         in.Tone,
		Complexity:   in.Complexity,
		VariantLabel: in.VariantLabel,
		Content:      in.Content,
	}
	if in.IsFavorite != nil {
		variant.IsFavorite = *in.IsFavorite
	}

	if err := s.repo.InsertVariant(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *Service) UpdateVariant(ctx context.Context, userID uint64, sessionID, variantID string, in UpdateVariantInput) (*Variant, error) {
	if in.Tone == nil && in.Complexity == nil && in.VariantLabel == nil && in.Content == nil && in.IsFavorite == nil {
		return nil, validationErr("at least one of tone, complexity, variant_label, content or is_favorite is required")
	}
	if in.Content != nil && strings.TrimSpace(*in.Content) == "" {
		return nil, validationErr("content must not be empty")
	}

	if _, err := s.resolveOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	// verify the variant actually belongs to the claimed session
	if _, err := s.resolveVariant(ctx, sessionID, variantID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Tone != nil {
		fields["tone"] = *in.Tone
	}
	if in.Complexity != nil {
		fields["complexity"] = *in.Complexity
	}
	if in.VariantLabel != nil {
		fields["variant_label"] = *in.VariantLabel
	}
	if in.Content != nil {
		fields["content"] = *in.Content
	}
	if in.IsFavorite != nil {
		fields["is_favorite"] = *in.IsFavorite
	}

	if _, err := s.repo.UpdateVariant(ctx, sessionID, variantID, fields); err != nil {
		return nil, err
	}

	return s.resolveVariant(ctx, sessionID, variantID)
}

func (s *Service) DeleteVariant(ctx context.Context, userID uint64, sessionID, variantID string) error {
	if _, err := s.resolveOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}

	rows, err := s.repo.DeleteVariant(ctx, sessionID, variantID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVariantNotFound
	}
	return nil
}

func (s *Service) ListVariants(ctx context.Context, userID uint64, sessionID string, favoritesOnly bool) ([]Variant, error) {
	if _, err := s.resolveOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListVariants(ctx, sessionID, favoritesOnly)
}

func (s *Service) resolveOwnedSession(ctx context.Context, userID uint64, sessionID string) (*Session, error) {
	sess, err := s.repo.GetOwnedSession(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *Service) resolveVariant(ctx context.Context, sessionID, variantID string) (*Variant, error) {
	v, err := s.repo.GetVariant(ctx, sessionID, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	return v, nil
}
