package storage

import (
	"context"
	"time"

	"github.com/iudanet/articlekeeper/internal/models"
)

// ArticleFilter параметры выборки статей
type ArticleFilter struct {
	Status string   // обязательный статус
	Query  string   // подстрока в title/content без учета регистра, пусто = все
	Tags   []string // хотя бы одна из меток, пусто = все
	Limit  int      // 0 = без ограничения
	Offset int
}

// ArticleStorage defines interface for article persistence
type ArticleStorage interface {
	// CreateArticle сохраняет новую статью вместе с метками
	CreateArticle(ctx context.Context, article *models.Article) error

	// GetArticle возвращает статью в заданном статусе.
	// Returns ErrArticleNotFound if article doesn't exist or has another status
	GetArticle(ctx context.Context, id, status string) (*models.Article, error)

	// UpdateArticle обновляет title, content, tags и updated_at черновика.
	// Returns ErrArticleNotFound if draft doesn't exist
	UpdateArticle(ctx context.Context, article *models.Article) error

	// DeleteArticle удаляет статью в заданном статусе
	DeleteArticle(ctx context.Context, id, status string) error

	// SetStatus переводит статью из from в to и возвращает обновленную запись
	SetStatus(ctx context.Context, id, from, to string, at time.Time) (*models.Article, error)

	// ListArticles возвращает страницу статей (новые первыми) и общее количество
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*models.Article, int, error)

	// ListTags возвращает отсортированный список меток опубликованных статей
	ListTags(ctx context.Context) ([]string, error)
}
