package models

import (
	"strings"
)

// Filter описывает проекцию ленты для отображения.
// Применение фильтра никогда не меняет исходную коллекцию.
type Filter struct {
	Tags      map[string]struct{} // выбранные метки; пусто - подходят все
	Liked     map[string]struct{} // id избранных статей
	Query     string              // подстрока заголовка без учёта регистра
	LikedOnly bool                // вкладка "Favorites"
}

// Match проверяет, проходит ли элемент фильтр
func (f Filter) Match(item ContentItem) bool {
	if !f.matchTags(item) {
		return false
	}

	query := strings.TrimSpace(f.Query)
	if query != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(query)) {
		return false
	}

	if f.LikedOnly {
		if _, ok := f.Liked[item.ID]; !ok {
			return false
		}
	}

	return true
}

// matchTags пересечение тегов элемента с выбранными метками
func (f Filter) matchTags(item ContentItem) bool {
	if len(f.Tags) == 0 {
		return true
	}
	for _, t := range item.Tags {
		if _, ok := f.Tags[t]; ok {
			return true
		}
	}
	return false
}

// Apply возвращает новый слайс с элементами, прошедшими фильтр, в исходном порядке
func (f Filter) Apply(items []ContentItem) []ContentItem {
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// SetOf строит множество из списка строк
func SetOf(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
