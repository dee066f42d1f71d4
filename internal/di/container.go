// Package di provides dependency injection configuration for the BookNote server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/booknoteapp/booknote-server/internal/config"
	"github.com/booknoteapp/booknote-server/internal/di/providers"
	"github.com/booknoteapp/booknote-server/internal/logger"
	"github.com/booknoteapp/booknote-server/internal/service"
	"github.com/booknoteapp/booknote-server/internal/session"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideStorageAdapter)
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSessionMachine)

	// Business services
	do.Provide(injector, providers.ProvideLibraryService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideChapterService)
	do.Provide(injector, providers.ProvideNoteService)
	do.Provide(injector, providers.ProvideSpellService)
	do.Provide(injector, providers.ProvideSearchService)
	do.Provide(injector, providers.ProvideNavigationService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)
	do.Provide(injector, providers.ProvideMDNSService)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*session.Machine](injector)

	// Business services
	_ = do.MustInvoke[*service.LibraryService](injector)
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.ChapterService](injector)
	_ = do.MustInvoke[*service.NoteService](injector)
	_ = do.MustInvoke[*service.SpellService](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*service.NavigationService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)
	_ = do.MustInvoke[*providers.MDNSServiceHandle](injector)

	return nil
}
