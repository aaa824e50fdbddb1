// This package is used to initialize the application. It has dependencies on most
// other packages. Other packages can depend on it as a quick way to get access to
// all the dependencies.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petuhovskiy/notepick/internal/actions"
	"github.com/petuhovskiy/notepick/internal/bgjobs"
	"github.com/petuhovskiy/notepick/internal/conf"
	"github.com/petuhovskiy/notepick/internal/flashcards"
	"github.com/petuhovskiy/notepick/internal/log"
	"github.com/petuhovskiy/notepick/internal/models"
	"github.com/petuhovskiy/notepick/internal/pick"
	"github.com/petuhovskiy/notepick/internal/repos"
	"github.com/petuhovskiy/notepick/internal/state"
)

type App struct {
	Config     *conf.App
	DB         *gorm.DB
	Repo       *Repos
	State      state.Store
	Flashcards *flashcards.Counter
	Dispatcher *actions.Dispatcher
	Register   *bgjobs.Register
	Locker     *bgjobs.KeyLocker
	Rand       pick.Source
}

func NewAppFromEnv(ctx context.Context) (*App, error) {
	cfg, err := conf.ParseEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config from env: %w", err)
	}

	db, err := connectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	repo, err := createRepos(db, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create repos: %w", err)
	}

	store, err := state.New(ctx, cfg, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create state store: %w", err)
	}
	log.Info(ctx, "using state backend", zap.String("backend", cfg.StateBackend))

	return &App{
		Config:     cfg,
		DB:         db,
		Repo:       repo,
		State:      store,
		Flashcards: flashcards.NewCounter(repo.Flashcard),
		Dispatcher: actions.NewDispatcher(repo.Workspace, repo.Note),
		Register:   bgjobs.NewRegister(),
		Locker:     bgjobs.NewKeyLocker(),
		Rand:       pick.GlobalSource{},
	}, nil
}

var (
	PicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notepick_picks_total",
		Help: "Number of picked actions by category",
	}, []string{"category"})

	CandidatesCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "notepick_candidates",
		Help:    "Number of candidates offered to a single pick",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})

	CommandTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "notepick_command_seconds",
		Help: "Time spent on each command",
	}, []string{"command"})
)

// StartPrometheus serves /metrics in the background. Does nothing if the bind address is empty.
func (a *App) StartPrometheus(ctx context.Context) {
	if a.Config.PrometheusBind == "" {
		return
	}

	a.Register.Go(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: a.Config.PrometheusBind, Handler: mux}

		go func() {
			<-ctx.Done()
			_ = srv.Close()
		}()

		log.Info(ctx, "serving metrics", zap.String("bind", a.Config.PrometheusBind))
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "prometheus server error", zap.Error(err))
		}
	})
}

func connectDB(cfg *conf.App) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

type Repos struct {
	Note      *repos.NoteRepo
	Flashcard *repos.FlashcardRepo
	Setting   *repos.SettingRepo
	Workspace *repos.WorkspaceRepo
}

func createRepos(db *gorm.DB, cfg *conf.App) (*Repos, error) {
	err := db.AutoMigrate(
		&models.Note{},
		&models.NoteTag{},
		&models.NoteSource{},
		&models.Flashcard{},
		&models.Setting{},
		&models.Pane{},
		&models.Workspace{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	if cfg.DebugDB {
		db = db.Debug()
	}

	return &Repos{
		Note:      repos.NewNoteRepo(db),
		Flashcard: repos.NewFlashcardRepo(db),
		Setting:   repos.NewSettingRepo(db),
		Workspace: repos.NewWorkspaceRepo(db),
	}, nil
}
