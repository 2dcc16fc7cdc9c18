// Package di wires the client stores together with samber/do.
package di

import (
	"github.com/samber/do/v2"

	"github.com/iudanet/articlekeeper/internal/client/app"
	"github.com/iudanet/articlekeeper/internal/client/config"
)

// NewContainer создает контейнер с провайдерами клиента.
// Сервисы создаются лениво при первом Invoke и живут до Shutdown.
func NewContainer(cfg config.Config) *do.RootScope {
	injector := do.New()

	// Инфраструктура
	do.ProvideValue(injector, cfg)
	do.Provide(injector, ProvideLogger)
	do.Provide(injector, ProvideStorage)
	do.Provide(injector, ProvideClient)
	do.Provide(injector, ProvideItemCache)

	// Хранилища
	do.Provide(injector, ProvideArticles)
	do.Provide(injector, ProvideTags)
	do.Provide(injector, ProvideUserTags)
	do.Provide(injector, ProvideLikes)
	do.Provide(injector, ProvideProfile)

	do.Provide(injector, ProvideApp)

	return injector
}

// App возвращает собранный фасад клиента
func App(injector do.Injector) (*app.App, error) {
	return do.Invoke[*app.App](injector)
}
