// Package priority implements the "Priority" note property.
// The value is kept as text in the note properties, like any other property.
package priority

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/petuhovskiy/notepick/internal/log"
	"github.com/petuhovskiy/notepick/internal/models"
)

// MaxPriority bounds the weight of a single note.
const MaxPriority = 1_000_000

// PropertyStore persists note properties.
type PropertyStore interface {
	SetProperty(note *models.Note, key string, val string) error
}

func Has(note *models.Note) bool {
	_, ok := note.Properties[models.PropPriority]
	return ok
}

// Get parses the priority of the note. ok is false if it's missing or not a number.
func Get(note *models.Note) (val int, ok bool) {
	raw, found := note.Properties[models.PropPriority]
	if !found || raw == nil {
		return 0, false
	}

	var str string
	switch v := raw.(type) {
	case string:
		str = v
	case float64:
		// numbers written by hand into the json column
		if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
			return 0, false
		}
		return int(v), true
	default:
		str = fmt.Sprint(v)
	}

	val, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, false
	}
	return val, true
}

// Weight returns the priority if it's a positive number, def otherwise.
// Values above MaxPriority are capped.
func Weight(note *models.Note, def int) int {
	val, ok := Get(note)
	if !ok || val < 1 {
		return def
	}
	return min(val, MaxPriority)
}

func Assign(store PropertyStore, note *models.Note, val int) error {
	err := store.SetProperty(note, models.PropPriority, strconv.Itoa(val))
	if err != nil {
		return fmt.Errorf("assign priority to note %d: %w", note.ID, err)
	}
	return nil
}

// Ensure assigns def to the note if it has no priority property yet.
func Ensure(ctx context.Context, store PropertyStore, note *models.Note, def int) error {
	if Has(note) {
		return nil
	}

	log.Debug(ctx, "assigning default priority", zap.Uint("noteID", note.ID), zap.Int("priority", def))
	return Assign(store, note, def)
}
