package repos

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petuhovskiy/notepick/internal/models"
)

type NoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) *NoteRepo {
	return &NoteRepo{
		db: db,
	}
}

func (r *NoteRepo) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindByTitle returns the oldest note with the given title, or nil if there is none.
func (r *NoteRepo) FindByTitle(title string) (*models.Note, error) {
	var notes []models.Note
	err := FilterByTitle(title).Apply(r.db).
		Order("id ASC").
		Limit(1).
		Find(&notes).
		Error
	if err != nil {
		return nil, fmt.Errorf("find note by title: %w", err)
	}
	if len(notes) == 0 {
		return nil, nil
	}
	return &notes[0], nil
}

// FindTagged returns all notes tagged with the tag note.
func (r *NoteRepo) FindTagged(tagID uint, filters []Filter) ([]models.Note, error) {
	var notes []models.Note

	db := r.db
	db = db.Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Where("note_tags.tag_id = ?", tagID)
	for _, filter := range filters {
		db = filter.Apply(db)
	}

	err := db.
		Order("notes.id ASC").
		Find(&notes).
		Error
	if err != nil {
		return nil, fmt.Errorf("find tagged notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepo) AddTag(noteID uint, tagID uint) error {
	return r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.NoteTag{NoteID: noteID, TagID: tagID}).
		Error
}

func (r *NoteRepo) AddSource(noteID uint, sourceID uint, position int) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "note_id"}, {Name: "source_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"position"}),
		}).
		Create(&models.NoteSource{NoteID: noteID, SourceID: sourceID, Position: position}).
		Error
}

// Sources returns the notes the given note was taken from, in position order.
func (r *NoteRepo) Sources(noteID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.
		Joins("JOIN note_sources ON note_sources.source_id = notes.id").
		Where("note_sources.note_id = ?", noteID).
		Order("note_sources.position ASC").
		Find(&notes).
		Error
	if err != nil {
		return nil, fmt.Errorf("find note sources: %w", err)
	}
	return notes, nil
}

// SetProperty writes a single property and persists the whole property map.
func (r *NoteRepo) SetProperty(note *models.Note, key string, val string) error {
	if note.Properties == nil {
		note.Properties = make(map[string]any)
	}
	note.Properties[key] = val

	err := r.db.Model(note).Update("properties", note.Properties).Error
	if err != nil {
		return fmt.Errorf("update note properties: %w", err)
	}
	return nil
}
