package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/db"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/platform"
	"github.com/securewithdom/Dom-Creator-Dashboard/internal/stream"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound = errors.New("post not found")
	ErrInvalid  = errors.New("invalid post")
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) Create(ctx context.Context, input Post) (Post, error) {
	p, ok := platform.Normalize(string(input.Platform))
	if !ok {
		return Post{}, fmt.Errorf("unknown platform %q: %w", input.Platform, ErrInvalid)
	}
	input.Platform = p
	if input.Caption == "" {
		return Post{}, fmt.Errorf("caption required: %w", ErrInvalid)
	}
	if input.ScheduledAt.IsZero() {
		return Post{}, fmt.Errorf("scheduled_datetime required: %w", ErrInvalid)
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO scheduled_posts (id, platform, caption, scheduled_at, link_or_asset_note)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING is_posted, created_at, updated_at
	`, input.ID, input.Platform, input.Caption, input.ScheduledAt, input.LinkOrAssetNote)
	if err := row.Scan(&input.IsPosted, &input.CreatedAt, &input.UpdatedAt); err != nil {
		return Post{}, err
	}

	if s.hub != nil {
		s.hub.PublishEvent("post.created", input)
	}
	return input, nil
}

func (s *Service) Get(ctx context.Context, id string) (Post, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, platform, caption, scheduled_at, COALESCE(link_or_asset_note,''), is_posted, created_at, updated_at
		FROM scheduled_posts WHERE id=$1
	`, id)
	var p Post
	err := row.Scan(&p.ID, &p.Platform, &p.Caption, &p.ScheduledAt, &p.LinkOrAssetNote, &p.IsPosted, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, err
	}
	return p, nil
}

type ListFilter struct {
	Platform      platform.Platform
	IncludePosted bool
}

// List returns scheduled posts ordered by scheduled time. By default only
// unposted posts come back, matching what the scheduler page shows.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Post, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, platform, caption, scheduled_at, COALESCE(link_or_asset_note,''), is_posted, created_at, updated_at
		FROM scheduled_posts
		WHERE (NOT is_posted OR $1) AND ($2 = '' OR platform = $2)
		ORDER BY scheduled_at
	`, f.IncludePosted, string(f.Platform))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Platform, &p.Caption, &p.ScheduledAt, &p.LinkOrAssetNote, &p.IsPosted, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Post{}, err
	}

	if patch.Platform != nil {
		pl, ok := platform.Normalize(*patch.Platform)
		if !ok {
			return Post{}, fmt.Errorf("unknown platform %q: %w", *patch.Platform, ErrInvalid)
		}
		p.Platform = pl
	}
	if patch.Caption != nil {
		if *patch.Caption == "" {
			return Post{}, fmt.Errorf("caption required: %w", ErrInvalid)
		}
		p.Caption = *patch.Caption
	}
	if patch.ScheduledAt != nil {
		p.ScheduledAt = *patch.ScheduledAt
	}
	if patch.LinkOrAssetNote != nil {
		p.LinkOrAssetNote = *patch.LinkOrAssetNote
	}
	if patch.IsPosted != nil {
		p.IsPosted = *patch.IsPosted
	}

	row := s.db.QueryRow(ctx, `
		UPDATE scheduled_posts
		SET platform=$2, caption=$3, scheduled_at=$4, link_or_asset_note=$5, is_posted=$6, updated_at=now()
		WHERE id=$1
		RETURNING updated_at
	`, p.ID, p.Platform, p.Caption, p.ScheduledAt, p.LinkOrAssetNote, p.IsPosted)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return Post{}, err
	}

	if s.hub != nil {
		s.hub.PublishEvent("post.updated", p)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM scheduled_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if s.hub != nil {
		s.hub.PublishEvent("post.deleted", struct {
			ID string `json:"id"`
		}{ID: id})
	}
	return nil
}
