package mutate

import (
	"strconv"
	"strings"

	"focusday-cli/internal/model"
	"focusday-cli/internal/store"
)

// AddBlock appends a new focus block with the default mode and length.
func AddBlock(db *store.DB) model.FocusBlock {
	b := model.FocusBlock{Mode: model.ModeCreate, Minutes: model.BlockDefaultMinutes}
	if db == nil {
		return b
	}
	db.Blocks = append(db.Blocks, b)
	return b
}

// SetBlockMode changes a block's working mode. Unknown modes are refused;
// out-of-range indices are a no-op.
func SetBlockMode(db *store.DB, index int, mode model.BlockMode) (bool, error) {
	if !mode.Valid() {
		return false, ErrInvalidMode
	}
	if db == nil || index < 0 || index >= len(db.Blocks) {
		return false, nil
	}
	db.Blocks[index].Mode = mode
	return true, nil
}

// SetBlockMinutes parses raw as a minute count and applies it clamped to
// the allowed range. Unparseable input falls back to the default length,
// matching a blank form field.
func SetBlockMinutes(db *store.DB, index int, raw string) (int, bool) {
	minutes := ClampMinutes(ParseMinutes(raw))
	if db == nil || index < 0 || index >= len(db.Blocks) {
		return minutes, false
	}
	db.Blocks[index].Minutes = minutes
	return minutes, true
}

// DeleteBlock removes the block at index; later blocks shift down by one.
func DeleteBlock(db *store.DB, index int) bool {
	if db == nil || index < 0 || index >= len(db.Blocks) {
		return false
	}
	db.Blocks = append(db.Blocks[:index], db.Blocks[index+1:]...)
	return true
}

// ParseMinutes reads an integer minute count, defaulting when unparseable.
func ParseMinutes(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return model.BlockDefaultMinutes
	}
	return n
}

// ClampMinutes bounds a minute count to the valid block length range.
func ClampMinutes(n int) int {
	if n < model.BlockMinMinutes {
		return model.BlockMinMinutes
	}
	if n > model.BlockMaxMinutes {
		return model.BlockMaxMinutes
	}
	return n
}
