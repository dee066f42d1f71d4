package providers

import (
	"github.com/samber/do/v2"

	"github.com/booknoteapp/booknote-server/internal/config"
	"github.com/booknoteapp/booknote-server/internal/logger"
	"github.com/booknoteapp/booknote-server/internal/service"
	"github.com/booknoteapp/booknote-server/internal/session"
)

// ProvideLibraryService provides the library management service.
func ProvideLibraryService(i do.Injector) (*service.LibraryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	machine := do.MustInvoke[*session.Machine](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewLibraryService(storeHandle.Store, machine, sseHandle.Manager, log.Logger), nil
}

// ProvideBookService provides the book shelf service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	machine := do.MustInvoke[*session.Machine](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, machine, log.Logger), nil
}

// ProvideChapterService provides the chapter service.
func ProvideChapterService(i do.Injector) (*service.ChapterService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewChapterService(storeHandle.Store, log.Logger), nil
}

// ProvideNoteService provides the detail note service.
func ProvideNoteService(i do.Injector) (*service.NoteService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewNoteService(storeHandle.Store, log.Logger), nil
}

// ProvideSpellService provides the spell check service.
func ProvideSpellService(i do.Injector) (*service.SpellService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSpellService(storeHandle.Store, cfg.Spell.Delay, log.Logger), nil
}

// ProvideSearchService provides the search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	machine := do.MustInvoke[*session.Machine](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSearchService(storeHandle.Store, machine, log.Logger), nil
}

// ProvideNavigationService provides the navigation service.
func ProvideNavigationService(i do.Injector) (*service.NavigationService, error) {
	machine := do.MustInvoke[*session.Machine](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewNavigationService(machine, log.Logger), nil
}
