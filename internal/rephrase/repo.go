package rephrase

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateSession(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetOwnedSession looks up a session by id AND owner in one combined filter,
// so a session owned by another user is indistinguishable from a missing one.
func (r *Repo) GetOwnedSession(ctx context.Context, userID uint64, sessionID string) (*Session, error) {
	var s Session
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateOwnedSession applies the supplied column updates to the session
// matching id AND owner, returning the number of rows touched.
func (r *Repo) UpdateOwnedSession(ctx context.Context, userID uint64, sessionID string, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Session{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *Repo) ListSessions(ctx context.Context, userID uint64) ([]Session, error) {
	var sessions []Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *Repo) InsertVariant(ctx context.Context, v *Variant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// GetVariant fetches a variant by id AND session id; a variant attached to a
// different session than claimed does not match.
func (r *Repo) GetVariant(ctx context.Context, sessionID, variantID string) (*Variant, error) {
	var v Variant
	if err := r.db.WithContext(ctx).
		Where("variant_id = ? AND session_id = ?", variantID, sessionID).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repo) UpdateVariant(ctx context.Context, sessionID, variantID string, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Variant{}).
		Where("variant_id = ? AND session_id = ?", variantID, sessionID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *Repo) DeleteVariant(ctx context.Context, sessionID, variantID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("variant_id = ? AND session_id = ?", variantID, sessionID).
		Delete(&Variant{})
	return res.RowsAffected, res.Error
}

func (r *Repo) ListVariants(ctx context.Context, sessionID string, favoritesOnly bool) ([]Variant, error) {
	q := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC")

	if favoritesOnly {
		q = q.Where("is_favorite = ?", true)
	}

	var variants []Variant
	if err := q.Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}
