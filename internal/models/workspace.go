package models

import "gorm.io/gorm"

// Pane is a note opened in the workspace.
type Pane struct {
	gorm.Model

	NoteID uint `gorm:"index"`

	// InContext is set when the note is shown inside its parent document
	// instead of as a standalone page.
	InContext bool

	// Pinned panes were opened by the user and stay until closed.
	// Unpinned panes are replaced on the next navigation.
	Pinned bool `gorm:"index"`
}

// Workspace holds the single current location of the app window.
type Workspace struct {
	ID  uint `gorm:"primarykey"`
	URL string
}

const WorkspaceID = 1
