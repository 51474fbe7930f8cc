package schema

import "github.com/transitdata/gtfs-dataset/ids"

// Level is a level within a station complex, used to describe multi-level
// stations and pathways (levels.txt).
type Level struct {
	LevelID    ids.LevelId
	LevelIndex float64
	LevelName  string
}

// ValidateRow enforces levels.txt's one within-row rule: level_id can
// never be empty.
func (l *Level) ValidateRow() error {
	if l.LevelID.IsEmpty() {
		return newMissingValue("level_id", "can never be empty", l.snapshot())
	}
	return nil
}

func (l *Level) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "levels", Fields: map[string]string{
		"level_id": l.LevelID.String(),
	}}
}
