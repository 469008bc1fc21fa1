package root

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/serhangurakan/life-timer/internal/config"
	"github.com/serhangurakan/life-timer/internal/core"
	"github.com/serhangurakan/life-timer/internal/identity"
	"github.com/serhangurakan/life-timer/internal/logging"
	"github.com/serhangurakan/life-timer/internal/session"
	"github.com/serhangurakan/life-timer/internal/store"
	syncstore "github.com/serhangurakan/life-timer/internal/sync"
	"github.com/serhangurakan/life-timer/internal/ui"
)

func timeNowMillis() int64 { return time.Now().UnixMilli() }

// app wires config, identity, store, and session for one CLI invocation.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	sess   *session.Session
	userID string
	authed bool
}

func loadConfig() (config.Config, error) {
	path := cfgPath
	if path == "" {
		defPath, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = defPath
	}
	return config.Load(path)
}

func resolveIdentity(cfg config.Config) (identity.Provider, error) {
	if cfg.UserID != "" {
		return identity.Static{ID: cfg.UserID}, nil
	}
	idPath, err := identity.DefaultIDPath()
	if err != nil {
		return nil, err
	}
	return identity.NewFileProvider(idPath)
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	if cfg.RemoteURL != "" {
		return syncstore.NewClient(cfg.RemoteURL), func() {}, nil
	}
	path := cfg.DBPath
	if path == "" {
		defPath, err := store.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
		path = defPath
	}
	db, err := store.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}

// bellNotifier rings the terminal when a play session runs out.
func bellNotifier() session.Notifier {
	return session.NotifierFunc(func() {
		fmt.Fprintln(os.Stdout, "\a"+ui.Warn.Render(ui.IconWarn+" Play time is up!"))
	})
}

// openApp loads the persisted snapshot (or a fresh one when signed out or
// absent) and returns a ready session. The cleanup flushes pending saves.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.JSON)

	provider, err := resolveIdentity(cfg)
	if err != nil {
		return nil, nil, err
	}
	userID, authed := provider.UserID()

	nowMillis := timeNowMillis()
	if !authed {
		// No identity: fresh snapshot, persist nothing.
		sess := session.New(core.NewSnapshot(nowMillis), session.Config{
			Notifier: bellNotifier(),
			Logger:   logger,
		})
		return &app{cfg: cfg, logger: logger, sess: sess}, func() {}, nil
	}

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	bridge := store.NewBridge(st, userID, logger)

	snap := core.NewSnapshot(nowMillis)
	if loaded, err := bridge.Latest(ctx); err != nil {
		logger.Warn("snapshot load failed, starting fresh", "err", err)
	} else if loaded != nil {
		snap = *loaded
	}

	sess := session.New(snap, session.Config{
		Notifier: bellNotifier(),
		Mirror:   bridge,
		Logger:   logger,
	})
	// Catch up whatever gap accumulated since the last run.
	sess.Tick()

	cleanup := func() {
		bridge.Close()
		closeStore()
	}
	return &app{cfg: cfg, logger: logger, sess: sess, userID: userID, authed: true}, cleanup, nil
}
