package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hoanghai1803/localpages/internal/models"
)

// CreateBlogPost inserts a new blog post and returns its ID. New posts start
// unreviewed and non-indexable; both flags flip only via explicit admin
// action.
func (s *Store) CreateBlogPost(ctx context.Context, post *models.BlogPost) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO blog_posts (slug, title, excerpt, content, how_created, why_created)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		post.Slug, post.Title, nullableString(post.Excerpt), post.Content,
		nullableString(post.HowCreated), nullableString(post.WhyCreated),
	)
	if err != nil {
		return 0, fmt.Errorf("creating blog post %q: %w", post.Slug, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting blog post id: %w", err)
	}
	return id, nil
}

// GetBlogPostBySlug returns the blog post with the given slug.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, slug, title, excerpt, content, created_at, how_created,
				why_created, human_reviewed, reviewed_by, reviewed_at, indexable
		 FROM blog_posts WHERE slug = ?`, slug)

	post, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting blog post by slug: %w", err)
	}
	return post, nil
}

// GetBlogPostByID returns the blog post with the given ID.
// Returns nil, ErrNotFound if no matching row exists.
func (s *Store) GetBlogPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, slug, title, excerpt, content, created_at, how_created,
				why_created, human_reviewed, reviewed_by, reviewed_at, indexable
		 FROM blog_posts WHERE id = ?`, id)

	post, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting blog post by id: %w", err)
	}
	return post, nil
}

// ListBlogPosts returns every blog post, newest first.
func (s *Store) ListBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slug, title, excerpt, content, created_at, how_created,
				why_created, human_reviewed, reviewed_by, reviewed_at, indexable
		 FROM blog_posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing blog posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning blog post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blog posts: %w", err)
	}
	return posts, nil
}

// SetBlogPostIndexable sets the indexable flag on a blog post.
// Returns ErrNotFound if no matching row exists.
func (s *Store) SetBlogPostIndexable(ctx context.Context, id int64, indexable bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE blog_posts SET indexable = ? WHERE id = ?`, indexable, id)
	if err != nil {
		return fmt.Errorf("setting blog post indexable: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkBlogPostReviewed records a human sign-off on a blog post.
// Returns ErrNotFound if no matching row exists.
func (s *Store) MarkBlogPostReviewed(ctx context.Context, id int64, reviewedBy string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE blog_posts
		 SET human_reviewed = 1, reviewed_by = ?, reviewed_at = datetime('now')
		 WHERE id = ?`, reviewedBy, id)
	if err != nil {
		return fmt.Errorf("marking blog post reviewed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBlogPost removes the blog post with the given ID.
// Returns ErrNotFound if no matching row exists.
func (s *Store) DeleteBlogPost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blog post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanBlogPost scans a single blog_posts row into a models.BlogPost.
func scanBlogPost(row scanner) (*models.BlogPost, error) {
	var (
		post       models.BlogPost
		excerpt    sql.NullString
		createdAt  string
		howCreated sql.NullString
		whyCreated sql.NullString
		reviewedBy sql.NullString
		reviewedAt sql.NullString
	)

	if err := row.Scan(
		&post.ID, &post.Slug, &post.Title, &excerpt, &post.Content, &createdAt,
		&howCreated, &whyCreated, &post.HumanReviewed, &reviewedBy, &reviewedAt,
		&post.Indexable,
	); err != nil {
		return nil, err
	}

	post.Excerpt = excerpt.String
	post.CreatedAt = parseTime(createdAt)
	post.HowCreated = howCreated.String
	post.WhyCreated = whyCreated.String
	post.ReviewedBy = reviewedBy.String
	post.ReviewedAt = parseTimePtr(nullStringToPtr(reviewedAt))

	return &post, nil
}
