// Package app wires configuration, adapters, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sawamura/stagepedia-backend/internal/adapter/imagefs"
	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres"
	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres/catalog"
	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres/history"
	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres/principal"
	"github.com/sawamura/stagepedia-backend/internal/adapter/postgres/snapshot"
	"github.com/sawamura/stagepedia-backend/internal/adapter/provider/mtl"
	"github.com/sawamura/stagepedia-backend/internal/config"
	"github.com/sawamura/stagepedia-backend/internal/domain"
	"github.com/sawamura/stagepedia-backend/internal/service/agency"
	"github.com/sawamura/stagepedia-backend/internal/service/group"
	"github.com/sawamura/stagepedia-backend/internal/service/song"
	"github.com/sawamura/stagepedia-backend/internal/service/talent"
	"github.com/sawamura/stagepedia-backend/internal/transport/middleware"
	"github.com/sawamura/stagepedia-backend/internal/transport/rest"
	"github.com/sawamura/stagepedia-backend/internal/workflow"
)

// textTranslator is the transport contract of the machine-translation
// client, satisfied by both mtl.Client and mtl.Echo.
type textTranslator interface {
	TranslateBatch(ctx context.Context, source, target string, texts map[string]string) (map[string]string, error)
}

// family holds the per-family plumbing shared by service and transport.
type family[A domain.Attributes] struct {
	coord      *workflow.Coordinator[A]
	drafts     *catalog.DraftRepo[A]
	canonicals *catalog.CanonicalRepo[A]
	snapshots  *snapshot.Repo[A]
}

func newFamily[A domain.Attributes](
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	txm *postgres.TxManager,
	historyRepo *history.Repo,
	mt textTranslator,
	fields mtl.Fields[A],
	entityType domain.EntityType,
) family[A] {
	drafts := catalog.NewDraftRepo[A](pool, entityType)
	canonicals := catalog.NewCanonicalRepo[A](pool, entityType)
	snapshots := snapshot.New[A](pool)
	guard := catalog.NewGuard(pool, entityType)

	coord := workflow.New(
		logger,
		workflow.Config{
			EntityType:      entityType,
			PublishRequires: cfg.PublishRequires(entityType),
			Languages:       cfg.CatalogLanguages(),
		},
		drafts,
		canonicals,
		historyRepo,
		snapshots,
		guard,
		mtl.NewTranslator(mt, fields),
		txm,
	)

	return family[A]{
		coord:      coord,
		drafts:     drafts,
		canonicals: canonicals,
		snapshots:  snapshots,
	}
}

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, logger, cfg.Database.DSN); err != nil {
			return err
		}
	}

	txm := postgres.NewTxManager(pool)
	historyRepo := history.New(pool)
	principalRepo := principal.New(pool)

	var mt textTranslator
	if cfg.Translator.BaseURL == "" {
		logger.Warn("no translator base url configured, using echo translator")
		mt = mtl.NewEcho()
	} else {
		mt = mtl.NewClient(cfg.Translator.BaseURL, cfg.Translator.APIKey, cfg.Translator.Timeout, logger)
	}

	images, err := imagefs.New(cfg.Images.Dir, cfg.Images.MaxBytes, logger)
	if err != nil {
		return err
	}

	agencies := newFamily(logger, cfg, pool, txm, historyRepo, mt, mtl.AgencyFields(), domain.EntityTypeAgency)
	groups := newFamily(logger, cfg, pool, txm, historyRepo, mt, mtl.GroupFields(), domain.EntityTypeGroup)
	songs := newFamily(logger, cfg, pool, txm, historyRepo, mt, mtl.SongFields(), domain.EntityTypeSong)
	talents := newFamily(logger, cfg, pool, txm, historyRepo, mt, mtl.TalentFields(), domain.EntityTypeTalent)

	agencySvc := agency.NewService(logger, agencies.coord, images)
	groupSvc := group.NewService(logger, groups.coord, images)
	songSvc := song.NewService(logger, songs.coord)
	talentSvc := talent.NewService(logger, talents.coord, images)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Agencies: rest.NewAgencyEndpoints(logger, agencySvc, agencies.drafts, agencies.canonicals, historyRepo, agencies.snapshots),
		Groups:   rest.NewGroupEndpoints(logger, groupSvc, groups.drafts, groups.canonicals, historyRepo, groups.snapshots),
		Songs:    rest.NewSongEndpoints(logger, songSvc, songs.drafts, songs.canonicals, historyRepo, songs.snapshots),
		Talents:  rest.NewTalentEndpoints(logger, talentSvc, talents.drafts, talents.canonicals, historyRepo, talents.snapshots),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Principal(principalRepo),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
