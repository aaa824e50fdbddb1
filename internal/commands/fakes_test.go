package commands

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/petuhovskiy/notepick/internal/actions"
	"github.com/petuhovskiy/notepick/internal/bgjobs"
	"github.com/petuhovskiy/notepick/internal/models"
	"github.com/petuhovskiy/notepick/internal/repos"
	"github.com/petuhovskiy/notepick/internal/state"
)

type fakeNotes struct {
	byTitle map[string]*models.Note
	tagged  map[uint][]models.Note
	written map[uint]string
	rawSQL  []string
	err     error
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{
		byTitle: map[string]*models.Note{},
		tagged:  map[uint][]models.Note{},
		written: map[uint]string{},
	}
}

func (f *fakeNotes) add(id uint, title string, tag uint, props map[string]any) {
	n := models.Note{Model: gorm.Model{ID: id}, Title: title, Properties: props}
	f.byTitle[title] = &n
	if tag != 0 {
		f.tagged[tag] = append(f.tagged[tag], n)
	}
}

func (f *fakeNotes) FindByTitle(title string) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byTitle[title], nil
}

// FindTagged applies id exclusion filters and records any other filter's SQL.
func (f *fakeNotes) FindTagged(tagID uint, filters []repos.Filter) ([]models.Note, error) {
	excluded := map[uint]bool{}
	for _, filter := range filters {
		wf, ok := filter.(repos.WhereFilter)
		if !ok {
			continue
		}
		ids, ok := firstArg(wf).([]uint)
		if !ok {
			f.rawSQL = append(f.rawSQL, wf.SQL)
			continue
		}
		for _, id := range ids {
			excluded[id] = true
		}
	}

	var notes []models.Note
	for _, n := range f.tagged[tagID] {
		if !excluded[n.ID] {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func firstArg(wf repos.WhereFilter) any {
	if len(wf.Args) == 0 {
		return nil
	}
	return wf.Args[0]
}

func (f *fakeNotes) Sources(uint) ([]models.Note, error) {
	return nil, nil
}

func (f *fakeNotes) SetProperty(note *models.Note, key string, val string) error {
	if note.Properties == nil {
		note.Properties = map[string]any{}
	}
	note.Properties[key] = val
	f.written[note.ID] = val
	return nil
}

// fakeWorkspace keeps pinned panes across navigation like repos.WorkspaceRepo.
type fakeWorkspace struct {
	panes []models.Pane
	url   string
}

func newFakeWorkspace(pinned ...uint) *fakeWorkspace {
	w := &fakeWorkspace{}
	for _, id := range pinned {
		w.panes = append(w.panes, models.Pane{NoteID: id, Pinned: true})
	}
	return w
}

func (w *fakeWorkspace) PinnedNoteIDs() ([]uint, error) {
	var ids []uint
	for _, p := range w.panes {
		if p.Pinned {
			ids = append(ids, p.NoteID)
		}
	}
	return ids, nil
}

func (w *fakeWorkspace) Navigate(panes []models.Pane) error {
	var kept []models.Pane
	for _, p := range w.panes {
		if p.Pinned {
			kept = append(kept, p)
		}
	}
	for _, p := range panes {
		p.Pinned = false
		kept = append(kept, p)
	}
	w.panes = kept
	return nil
}

func (w *fakeWorkspace) SetURL(url string) error {
	w.url = url
	return nil
}

func (w *fakeWorkspace) Pin(noteID uint) error {
	w.panes = append(w.panes, models.Pane{NoteID: noteID, Pinned: true})
	return nil
}

func (w *fakeWorkspace) ClosePane(noteID uint) (int64, error) {
	var kept []models.Pane
	var closed int64
	for _, p := range w.panes {
		if p.NoteID == noteID {
			closed++
			continue
		}
		kept = append(kept, p)
	}
	w.panes = kept
	return closed, nil
}

type fakeDue int

func (d fakeDue) DueCount(context.Context, time.Time) int {
	return int(d)
}

// recordingDispatcher records actions and runs them on the workspace.
type recordingDispatcher struct {
	next *actions.Dispatcher
	got  []actions.Action
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, a actions.Action) error {
	d.got = append(d.got, a)
	return d.next.Dispatch(ctx, a)
}

type recordingNotifier struct {
	msgs []string
}

func (n *recordingNotifier) Notify(_ context.Context, msg string) {
	n.msgs = append(n.msgs, msg)
}

// firstSource always draws 0.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

type failingStore struct {
	state.Store
	setErr error
}

func (s failingStore) Set(context.Context, string, string) error {
	return s.setErr
}

var errStore = errors.New("store is down")

type testPick struct {
	cmd        *PickRandomNote
	notes      *fakeNotes
	workspace  *fakeWorkspace
	store      *state.MemStore
	dispatcher *recordingDispatcher
	notifier   *recordingNotifier
}

func newTestPick(due int, pinned ...uint) *testPick {
	tp := &testPick{
		notes:     newFakeNotes(),
		workspace: newFakeWorkspace(pinned...),
		store:     state.NewMemStore(),
		notifier:  &recordingNotifier{},
	}
	tp.dispatcher = &recordingDispatcher{next: actions.NewDispatcher(tp.workspace, tp.notes)}
	tp.cmd = &PickRandomNote{
		projectTag:      "Project",
		defaultPriority: 1,
		stateKey:        "lastActionType",
		notes:           tp.notes,
		panes:           tp.workspace,
		due:             fakeDue(due),
		state:           tp.store,
		locker:          bgjobs.NewKeyLocker(),
		rnd:             firstSource{},
		dispatcher:      tp.dispatcher,
		notifier:        tp.notifier,
		now:             time.Now,
	}
	return tp
}
