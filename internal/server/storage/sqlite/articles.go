package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/articlekeeper/internal/models"
	"github.com/iudanet/articlekeeper/internal/server/storage"
	"github.com/iudanet/articlekeeper/pkg/api"
)

const articleColumns = `id, title, content, status, created_at, updated_at, published_at`

// scanner общий интерфейс для *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// CreateArticle сохраняет новую статью вместе с метками в одной транзакции
func (s *Storage) CreateArticle(ctx context.Context, article *models.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.Status,
		article.CreatedAt.UnixMilli(),
		article.UpdatedAt.UnixMilli(),
		nullableMillis(article.PublishedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}

	if err := replaceTags(ctx, tx, article.ID, article.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// GetArticle retrieves a single article by ID and status
func (s *Storage) GetArticle(ctx context.Context, id, status string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = ? AND status = ?`

	article, err := scanArticle(s.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if err := s.loadTags(ctx, []*models.Article{article}); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle обновляет поля статьи, статус не меняется
func (s *Storage) UpdateArticle(ctx context.Context, article *models.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE articles
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND status = ?
	`
	result, err := tx.ExecContext(ctx, query,
		article.Title,
		article.Content,
		article.UpdatedAt.UnixMilli(),
		article.ID,
		article.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if err := expectAffected(result); err != nil {
		return err
	}

	if err := replaceTags(ctx, tx, article.ID, article.Tags); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteArticle удаляет статью; метки удаляются каскадно
func (s *Storage) DeleteArticle(ctx context.Context, id, status string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ? AND status = ?`, id, status)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return expectAffected(result)
}

// SetStatus переводит статью из статуса from в to.
// При публикации выставляется published_at, при снятии он обнуляется.
func (s *Storage) SetStatus(ctx context.Context, id, from, to string, at time.Time) (*models.Article, error) {
	var publishedAt *time.Time
	if to == api.StatusPublished {
		publishedAt = &at
	}

	query := `
		UPDATE articles
		SET status = ?, updated_at = ?, published_at = ?
		WHERE id = ? AND status = ?
	`
	result, err := s.db.ExecContext(ctx, query, to, at.UnixMilli(), nullableMillis(publishedAt), id, from)
	if err != nil {
		return nil, fmt.Errorf("failed to change article status: %w", err)
	}
	if err := expectAffected(result); err != nil {
		return nil, err
	}

	return s.GetArticle(ctx, id, to)
}

// ListArticles возвращает страницу статей, новые первыми
func (s *Storage) ListArticles(ctx context.Context, filter storage.ArticleFilter) ([]*models.Article, int, error) {
	where, args := buildWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + where +
		` ORDER BY COALESCE(published_at, updated_at) DESC, rowid DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, max(filter.Offset, 0))
	}

	articles, err := s.queryArticles(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := s.loadTags(ctx, articles); err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// ListTags возвращает метки опубликованных статей без повторов
func (s *Storage) ListTags(ctx context.Context) (tags []string, err error) {
	query := `
		SELECT DISTINCT t.tag
		FROM article_tags t
		JOIN articles a ON a.id = t.article_id
		WHERE a.status = ?
		ORDER BY t.tag
	`
	rows, err := s.db.QueryContext(ctx, query, api.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tags = []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return tags, nil
}

// queryArticles читает строки полностью и закрывает курсор до следующих запросов:
// пул ограничен одним соединением
func (s *Storage) queryArticles(ctx context.Context, query string, args ...any) (articles []*models.Article, err error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	articles = []*models.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return articles, nil
}

// loadTags заполняет Tags у статей в порядке, в котором они были заданы
func (s *Storage) loadTags(ctx context.Context, articles []*models.Article) (err error) {
	if len(articles) == 0 {
		return nil
	}

	byID := make(map[string]*models.Article, len(articles))
	args := make([]any, 0, len(articles))
	for _, a := range articles {
		a.Tags = []string{}
		byID[a.ID] = a
		args = append(args, a.ID)
	}

	query := `
		SELECT article_id, tag FROM article_tags
		WHERE article_id IN (` + placeholders(len(args)) + `)
		ORDER BY article_id, position
	`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query article tags: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return fmt.Errorf("failed to scan article tag: %w", err)
		}
		if a, ok := byID[id]; ok {
			a.Tags = append(a.Tags, tag)
		}
	}
	return rows.Err()
}

// replaceTags перезаписывает метки статьи; повторы отбрасываются
func replaceTags(ctx context.Context, tx *sql.Tx, id string, tags []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM article_tags WHERE article_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear article tags: %w", err)
	}

	seen := make(map[string]struct{}, len(tags))
	position := 0
	for _, tag := range tags {
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO article_tags (article_id, tag, position) VALUES (?, ?, ?)`,
			id, tag, position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert article tag: %w", err)
		}
		position++
	}
	return nil
}

func buildWhere(filter storage.ArticleFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(strings.ToLower(q)) + "%"
		conds = append(conds, `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if len(filter.Tags) > 0 {
		conds = append(conds, "id IN (SELECT article_id FROM article_tags WHERE tag IN ("+placeholders(len(filter.Tags))+"))")
		for _, tag := range filter.Tags {
			args = append(args, tag)
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanArticle(row scanner) (*models.Article, error) {
	article := &models.Article{}
	var createdAt, updatedAt int64
	var publishedAt sql.NullInt64

	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Status,
		&createdAt,
		&updatedAt,
		&publishedAt,
	)
	if err != nil {
		return nil, err
	}

	article.CreatedAt = time.UnixMilli(createdAt)
	article.UpdatedAt = time.UnixMilli(updatedAt)
	if publishedAt.Valid {
		t := time.UnixMilli(publishedAt.Int64)
		article.PublishedAt = &t
	}
	return article, nil
}

func expectAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrArticleNotFound
	}
	return nil
}

func nullableMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// escapeLike экранирует спецсимволы LIKE
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
