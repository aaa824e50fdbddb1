package repos

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petuhovskiy/notepick/internal/models"
)

type WorkspaceRepo struct {
	db *gorm.DB
}

func NewWorkspaceRepo(db *gorm.DB) *WorkspaceRepo {
	return &WorkspaceRepo{
		db: db,
	}
}

// PinnedNoteIDs returns ids of notes the user keeps open.
func (r *WorkspaceRepo) PinnedNoteIDs() ([]uint, error) {
	var ids []uint
	err := r.db.
		Model(&models.Pane{}).
		Where("pinned = ?", true).
		Distinct().
		Pluck("note_id", &ids).
		Error
	if err != nil {
		return nil, fmt.Errorf("find pinned panes: %w", err)
	}
	return ids, nil
}

// Navigate replaces all unpinned panes with the given ones. Pinned panes are kept.
func (r *WorkspaceRepo) Navigate(panes []models.Pane) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("pinned = ?", false).Delete(&models.Pane{}).Error
		if err != nil {
			return fmt.Errorf("close unpinned panes: %w", err)
		}
		if len(panes) == 0 {
			return nil
		}
		for i := range panes {
			panes[i].Pinned = false
		}
		return tx.Create(&panes).Error
	})
}

// Pin opens the note in a pane that survives navigation.
func (r *WorkspaceRepo) Pin(noteID uint) error {
	return r.db.Create(&models.Pane{
		NoteID: noteID,
		Pinned: true,
	}).Error
}

// ClosePane closes every pane showing the note.
func (r *WorkspaceRepo) ClosePane(noteID uint) (closed int64, err error) {
	res := r.db.Where("note_id = ?", noteID).Delete(&models.Pane{})
	return res.RowsAffected, res.Error
}

func (r *WorkspaceRepo) SetURL(url string) error {
	return r.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&models.Workspace{ID: models.WorkspaceID, URL: url}).
		Error
}
