package providers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/booknoteapp/booknote-server/internal/config"
	"github.com/booknoteapp/booknote-server/internal/logger"
	"github.com/booknoteapp/booknote-server/internal/session"
	"github.com/booknoteapp/booknote-server/internal/sse"
	"github.com/booknoteapp/booknote-server/internal/storage"
	"github.com/booknoteapp/booknote-server/internal/storage/sqlite"
	"github.com/booknoteapp/booknote-server/internal/store"
)

// SSEManagerHandle wraps the SSE manager with its context for lifecycle management.
type SSEManagerHandle struct {
	*sse.Manager
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SSEManagerHandle) Shutdown() error {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Manager.Shutdown(ctx)
}

// ProvideSSEManager provides the server-sent events manager.
func ProvideSSEManager(i do.Injector) (*SSEManagerHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	manager := sse.NewManager(log.Logger)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	go manager.Start(ctx)

	log.Info("SSE manager started")

	return &SSEManagerHandle{
		Manager: manager,
		cancel:  cancel,
	}, nil
}

// AdapterHandle wraps the persistence adapter for injection.
type AdapterHandle struct {
	storage.Adapter
}

// ProvideStorageAdapter provides the persistence adapter selected by config.
// "local" keeps saves in an embedded Badger database; "remote" mirrors the
// hosted single-row layout in SQLite.
func ProvideStorageAdapter(i do.Injector) (*AdapterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	switch cfg.Storage.Backend {
	case config.BackendLocal:
		path := filepath.Join(cfg.Storage.DataPath, "badger")
		adapter, err := storage.OpenBadger(path, log.Logger)
		if err != nil {
			return nil, fmt.Errorf("open badger store: %w", err)
		}
		log.Info("Local storage initialized", "path", path)
		return &AdapterHandle{Adapter: adapter}, nil

	case config.BackendRemote:
		path := filepath.Join(cfg.Storage.DataPath, "booknote.db")
		adapter, err := sqlite.Open(path, log.Logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info("Remote-style storage initialized", "path", path)
		return &AdapterHandle{Adapter: adapter}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the loaded registry store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)
	adapterHandle := do.MustInvoke[*AdapterHandle](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)

	st := store.New(adapterHandle.Adapter, log.Logger, sseHandle.Manager)

	if err := st.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}

	if st.SetupRequired() {
		log.Warn("No library configured - setup required via API")
	} else {
		log.Info("Registry ready",
			"libraries", len(st.LibraryNames()),
			"active", st.ActiveLibrary(),
		)
	}

	return &StoreHandle{Store: st}, nil
}

// ProvideSessionMachine provides the navigation state machine.
func ProvideSessionMachine(i do.Injector) (*session.Machine, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return session.NewMachine(storeHandle.Store), nil
}
