package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/model"
)

func TestTitle(t *testing.T) {
	require.NoError(t, Title("Buy milk"))
	require.ErrorIs(t, Title(""), model.ErrTitleRequired)
	require.ErrorIs(t, Title("   "), model.ErrTitleRequired)
	require.NoError(t, Title(strings.Repeat("a", 100)))
	require.ErrorIs(t, Title(strings.Repeat("a", 101)), model.ErrTitleTooLong)
}

func TestDescription(t *testing.T) {
	require.NoError(t, Description(""))
	require.NoError(t, Description(strings.Repeat("d", 500)))
	require.ErrorIs(t, Description(strings.Repeat("d", 501)), model.ErrDescriptionTooLong)
}

func TestDueDate(t *testing.T) {
	now := time.Date(2030, time.March, 1, 23, 30, 0, 0, time.UTC)

	// Earlier the same calendar day is still valid.
	require.NoError(t, DueDate(time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC), now))
	require.NoError(t, DueDate(now.AddDate(0, 0, 7), now))
	require.ErrorIs(t, DueDate(now.AddDate(0, 0, -1), now), model.ErrDueDateInPast)
}

func TestColor(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		fails error
	}{
		{name: "without hash", in: "3b82f6", want: "#3b82f6"},
		{name: "with hash", in: "#3B82F6", want: "#3b82f6"},
		{name: "uppercase", in: "FFAA00", want: "#ffaa00"},
		{name: "empty", in: "", fails: model.ErrColorRequired},
		{name: "too short", in: "fff", fails: model.ErrInvalidColor},
		{name: "not hex", in: "zzzzzz", fails: model.ErrInvalidColor},
		{name: "too long", in: "#1234567", fails: model.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Color(tt.in)
			if tt.fails != nil {
				require.ErrorIs(t, err, tt.fails)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTag(t *testing.T) {
	got, err := Tag("  Urgent ")
	require.NoError(t, err)
	assert.Equal(t, "Urgent", got)

	_, err = Tag("   ")
	require.ErrorIs(t, err, model.ErrTagEmpty)

	_, err = Tag(strings.Repeat("t", 31))
	require.ErrorIs(t, err, model.ErrTagTooLong)
}

func TestTagList(t *testing.T) {
	got, err := TagList([]string{"Work", "work", " WORK ", "home"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "home"}, got)

	got, err = TagList(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	eleven := make([]string, 11)
	for i := range eleven {
		eleven[i] = strings.Repeat("x", i+1)
	}
	_, err = TagList(eleven)
	require.ErrorIs(t, err, model.ErrTagLimit)
}
