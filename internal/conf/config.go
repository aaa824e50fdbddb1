package conf

import (
	"github.com/caarlos0/env/v6"
)

type App struct {
	// PrometheusBind is the metrics listen address of the serve mode. Empty disables it.
	PrometheusBind string `env:"PROMETHEUS_BIND" envDefault:":2112"`

	// PostgresDSN is a DSN for the note store.
	PostgresDSN string `env:"POSTGRES_DSN,required"`

	DebugDB bool `env:"DEBUG_DB" envDefault:"false"`

	// StateBackend keeps the last picked category: "postgres", "redis" or "memory".
	StateBackend string `env:"STATE_BACKEND" envDefault:"postgres"`

	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	// StateKey is the key the last picked category is stored under.
	StateKey string `env:"STATE_KEY" envDefault:"lastActionType"`

	// ProjectTag is the title of the note used as the project tag.
	ProjectTag string `env:"PROJECT_TAG" envDefault:"Project"`

	// ProjectFilter is an extra SQL condition on project notes, e.g. "notes.title NOT LIKE 'Archive%'".
	ProjectFilter string `env:"PROJECT_FILTER"`

	// DefaultPriority is written to project notes that have no priority yet.
	DefaultPriority int `env:"DEFAULT_PRIORITY" envDefault:"1"`
}

func ParseEnv() (*App, error) {
	cfg := App{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
