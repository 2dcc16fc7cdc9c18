package api

// Статусы контента на стороне сервера
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Item представляет черновик или опубликованную статью в формате API
type Item struct {
	PublishedAt *string  `json:"published_at,omitempty"` // только для опубликованных
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Status      string   `json:"status"` // "draft" или "published"
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Tags        []string `json:"tags"`
}

// ItemPage представляет конверт списка элементов
type ItemPage struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// TagList представляет ответ GET /tags
type TagList struct {
	Items []string `json:"items"`
}

// DraftRequest представляет тело запроса на создание/редактирование черновика
type DraftRequest struct {
	Title   string   `json:"title" validate:"max=200"`
	Content string   `json:"content"`
	Tags    []string `json:"tags" validate:"max=20,dive,required,max=64"`
}

// EmptyRequest пустое тело для publish/unpublish
type EmptyRequest struct{}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
