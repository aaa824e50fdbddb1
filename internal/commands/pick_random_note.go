package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/actions"
	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/bgjobs"
	"github.com/petuhovskiy/notepick/internal/log"
	"github.com/petuhovskiy/notepick/internal/models"
	"github.com/petuhovskiy/notepick/internal/pick"
	"github.com/petuhovskiy/notepick/internal/priority"
	"github.com/petuhovskiy/notepick/internal/repos"
	"github.com/petuhovskiy/notepick/internal/state"
)

const msgNoActions = "No actions available"

type NoteStore interface {
	priority.PropertyStore
	FindByTitle(title string) (*models.Note, error)
	FindTagged(tagID uint, filters []repos.Filter) ([]models.Note, error)
}

type PinnedPanes interface {
	PinnedNoteIDs() ([]uint, error)
}

type DueCounter interface {
	DueCount(ctx context.Context, now time.Time) int
}

type Dispatcher interface {
	Dispatch(ctx context.Context, action actions.Action) error
}

// PickRandomNote sends the user either to a random project note that is not pinned open,
// or to the flashcard queue. Projects are weighted by priority, the queue by the
// number of due cards. The category of the previous pick is avoided when possible.
type PickRandomNote struct {
	projectTag      string
	defaultPriority int
	stateKey        string
	projectFilters  []repos.Filter

	notes      NoteStore
	panes      PinnedPanes
	due        DueCounter
	state      state.Store
	locker     *bgjobs.KeyLocker
	rnd        pick.Source
	dispatcher Dispatcher
	notifier   Notifier
	now        func() time.Time
}

func NewPickRandomNote(a *app.App, notifier Notifier) *PickRandomNote {
	var projectFilters []repos.Filter
	if a.Config.ProjectFilter != "" {
		projectFilters = append(projectFilters, repos.RawFilter(a.Config.ProjectFilter))
	}

	return &PickRandomNote{
		projectTag:      a.Config.ProjectTag,
		defaultPriority: a.Config.DefaultPriority,
		stateKey:        a.Config.StateKey,
		projectFilters:  projectFilters,
		notes:           a.Repo.Note,
		panes:           a.Repo.Workspace,
		due:             a.Flashcards,
		state:           a.State,
		locker:          a.Locker,
		rnd:             a.Rand,
		dispatcher:      a.Dispatcher,
		notifier:        notifier,
		now:             time.Now,
	}
}

func (r *PickRandomNote) Execute(ctx context.Context) error {
	due := r.due.DueCount(ctx, r.now())
	log.Info(ctx, "due flashcards", zap.Int("count", due))

	tag, err := r.notes.FindByTitle(r.projectTag)
	if err != nil {
		return fmt.Errorf("failed to find project tag: %w", err)
	}
	if tag == nil {
		log.Info(ctx, "no project tag found", zap.String("tag", r.projectTag))
		return nil
	}

	candidates, err := r.candidates(ctx, tag, due)
	if err != nil {
		return err
	}
	app.CandidatesCount.Observe(float64(len(candidates)))

	if len(candidates) == 0 {
		r.notifier.Notify(ctx, msgNoActions)
		return nil
	}

	unlock := r.locker.Lock(r.stateKey)
	defer unlock()

	last, _, err := r.state.Get(ctx, r.stateKey)
	if err != nil {
		return fmt.Errorf("failed to read last action: %w", err)
	}

	selected, newLast, err := pick.Pick(r.rnd, candidates, last)
	if errors.Is(err, pick.ErrEmptyInput) {
		r.notifier.Notify(ctx, msgNoActions)
		return nil
	}
	if err != nil {
		return err
	}

	err = r.state.Set(ctx, r.stateKey, newLast)
	if err != nil {
		return fmt.Errorf("failed to store last action: %w", err)
	}

	log.Info(ctx, "picked action",
		zap.String("category", newLast),
		zap.String("lastCategory", last),
		zap.Int("weight", selected.Weight),
	)
	app.PicksTotal.WithLabelValues(newLast).Inc()

	return r.dispatcher.Dispatch(ctx, selected.Payload)
}

func (r *PickRandomNote) candidates(ctx context.Context, tag *models.Note, due int) ([]pick.Candidate[actions.Action], error) {
	pinned, err := r.panes.PinnedNoteIDs()
	if err != nil {
		return nil, err
	}

	filters := []repos.Filter{repos.FilterExcludeIDs(pinned)}
	filters = append(filters, r.projectFilters...)

	projects, err := r.notes.FindTagged(tag.ID, filters)
	if err != nil {
		return nil, err
	}

	var candidates []pick.Candidate[actions.Action]
	for _, project := range projects {
		project := project
		err := priority.Ensure(ctx, r.notes, &project, r.defaultPriority)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, pick.Candidate[actions.Action]{
			Category: actions.CategoryProject,
			Weight:   priority.Weight(&project, r.defaultPriority),
			Payload:  actions.OpenProject{Note: project},
		})
	}

	if due > 0 {
		candidates = append(candidates, pick.Candidate[actions.Action]{
			Category: actions.CategoryFlashcards,
			Weight:   due,
			Payload:  actions.OpenFlashcardQueue{Due: due},
		})
	}

	return candidates, nil
}
