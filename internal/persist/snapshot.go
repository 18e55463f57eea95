package persist

import (
	"encoding/json"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/model"
)

// SchemaVersion is the current snapshot envelope version. Older versions
// are still readable; missing fields are backfilled with defaults.
const SchemaVersion = 2

// Storage keys. The whole state lives as one blob under StateKey; the sort
// preference is additionally cached under its own key so a cold start can
// render in the right order before full rehydration.
const (
	StateKey    = "taskdeck:state"
	SortPrefKey = "taskdeck:sortpref"
)

// State is everything that survives a restart. The transient selection and
// search text are deliberately excluded.
type State struct {
	Tasks           []model.Task        `json:"tasks"`
	Categories      []model.Category    `json:"categories"`
	CurrentFilter   model.StatusFilter  `json:"currentFilter"`
	CategoryFilters []string            `json:"categoryFilters"`
	TagFilters      []string            `json:"tagFilters"`
	SortBy          model.SortKey       `json:"sortBy"`
	SortDirection   model.SortDirection `json:"sortDirection"`
}

// SortPref is the fast-path sort preference cache.
type SortPref struct {
	SortBy        model.SortKey       `json:"sortBy"`
	SortDirection model.SortDirection `json:"sortDirection"`
}

type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// EmptyState is the initial state used when nothing is stored or the
// stored payload cannot be read.
func EmptyState() State {
	return State{
		Tasks:           []model.Task{},
		Categories:      []model.Category{},
		CurrentFilter:   model.FilterAll,
		CategoryFilters: []string{},
		TagFilters:      []string{},
		SortBy:          model.SortByCreated,
		SortDirection:   model.SortAsc,
	}
}

// EncodeState serializes state into the versioned envelope. Timestamps
// marshal as ISO-8601 (RFC 3339) strings.
func EncodeState(st State) (string, error) {
	blob, err := json.Marshal(envelope{State: st, Version: SchemaVersion})
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(blob), nil
}

// DecodeState parses a stored envelope and backfills any field an older
// schema version did not write, so evolving the schema never breaks reads
// of old snapshots. Corrupt payloads return an error; callers fall back to
// EmptyState.
func DecodeState(blob string) (State, error) {
	var env envelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		return State{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	if env.Version > SchemaVersion {
		return State{}, fmt.Errorf("snapshot version %d is newer than supported %d", env.Version, SchemaVersion)
	}
	return backfill(env.State), nil
}

// EncodeSortPref serializes the sort preference cache entry.
func EncodeSortPref(pref SortPref) (string, error) {
	blob, err := json.Marshal(pref)
	if err != nil {
		return "", fmt.Errorf("encoding sort preference: %w", err)
	}
	return string(blob), nil
}

// DecodeSortPref parses the sort preference cache entry.
func DecodeSortPref(blob string) (SortPref, error) {
	var pref SortPref
	if err := json.Unmarshal([]byte(blob), &pref); err != nil {
		return SortPref{}, fmt.Errorf("decoding sort preference: %w", err)
	}
	if pref.SortBy == "" {
		pref.SortBy = model.SortByCreated
	}
	if pref.SortDirection == "" {
		pref.SortDirection = model.SortAsc
	}
	return pref, nil
}

// backfill fills defaults for fields absent from older snapshot versions.
func backfill(st State) State {
	if st.Tasks == nil {
		st.Tasks = []model.Task{}
	}
	for i := range st.Tasks {
		if st.Tasks[i].Status == "" {
			st.Tasks[i].Status = model.StatusPending
		}
		if st.Tasks[i].Priority == "" {
			st.Tasks[i].Priority = model.PriorityMedium
		}
		if st.Tasks[i].Tags == nil {
			st.Tasks[i].Tags = []string{}
		}
	}
	if st.Categories == nil {
		st.Categories = []model.Category{}
	}
	if st.CurrentFilter == "" {
		st.CurrentFilter = model.FilterAll
	}
	if st.CategoryFilters == nil {
		st.CategoryFilters = []string{}
	}
	if st.TagFilters == nil {
		st.TagFilters = []string{}
	}
	if st.SortBy == "" {
		st.SortBy = model.SortByCreated
	}
	if st.SortDirection == "" {
		st.SortDirection = model.SortAsc
	}
	return st
}
