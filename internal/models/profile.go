package models

// Profile локальный профиль пользователя
type Profile struct {
	Name           string `json:"user_name"`
	PublishedCount int    `json:"posted_articles_count"`
}
