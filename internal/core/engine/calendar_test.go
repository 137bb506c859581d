package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marchTasks() []domain.Task {
	return []domain.Task{
		{TaskID: "1", Title: "Ensaio", Kind: domain.TaskKindCapture, Date: day("2024-03-04"), Time: ptr("14:00"), Completed: true},
		{TaskID: "2", Title: "Corte", Kind: domain.TaskKindEdit, Date: day("2024-03-04"), Time: ptr("09:30")},
		{TaskID: "3", Title: "Briefing", Kind: domain.TaskKindMeeting, Date: day("2024-03-12"), Completed: true},
		{TaskID: "4", Title: "Casamento", Kind: domain.TaskKindCapture, Date: day("2024-03-23")},
		{TaskID: "5", Title: "Color", Kind: domain.TaskKindEdit, Date: day("2024-03-31")},
	}
}

func TestAggregateTasks_CompletionScenario(t *testing.T) {
	agg, err := engine.AggregateTasks(marchTasks(), domain.TaskFilter{}, 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, agg.Stats.Total)
	assert.Equal(t, 2, agg.Stats.Completed)
	assert.Equal(t, 3, agg.Stats.Pending)
	assert.Equal(t, "40", agg.Stats.CompletionRate.String())
	assert.Equal(t, map[domain.TaskKind]int{
		domain.TaskKindCapture: 2, domain.TaskKindEdit: 2, domain.TaskKindMeeting: 1,
	}, agg.Stats.ByKind)
}

func TestAggregateTasks_Calendar(t *testing.T) {
	agg, err := engine.AggregateTasks(marchTasks(), domain.TaskFilter{}, 2024, 3)
	require.NoError(t, err)

	cal := agg.Calendar
	assert.Equal(t, 31, cal.DaysInMonth)
	assert.Equal(t, 5, cal.LeadingBlanks, "2024-03-01 is a Friday")
	require.Len(t, cal.Days[4], 2)
	assert.Equal(t, "2", cal.Days[4][0].TaskID, "09:30 comes before 14:00")
	assert.Len(t, cal.Days[31], 1)
	assert.NotContains(t, cal.Days, 1)
}

func TestAggregateTasks_FilterAppliesToBothOutputs(t *testing.T) {
	tasks := append(marchTasks(),
		domain.Task{TaskID: "6", Title: "Entrega", Kind: domain.TaskKindEdit, Date: day("2024-04-02"), Completed: true},
	)
	edit := domain.TaskKindEdit
	agg, err := engine.AggregateTasks(tasks, domain.TaskFilter{Kind: &edit}, 2024, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, agg.Stats.Total, "stats cover the whole filtered set, not just March")
	assert.Equal(t, 1, agg.Stats.Completed)
	assert.Equal(t, "33.3", agg.Stats.CompletionRate.String())
	assert.Equal(t, 0, agg.Stats.ByKind[domain.TaskKindCapture])

	calendarCount := 0
	for _, dayTasks := range agg.Calendar.Days {
		for _, task := range dayTasks {
			assert.Equal(t, domain.TaskKindEdit, task.Kind)
			calendarCount++
		}
	}
	assert.Equal(t, 2, calendarCount)
}

func TestAggregateTasks_EmptySetHasZeroRate(t *testing.T) {
	done := true
	agg, err := engine.AggregateTasks(nil, domain.TaskFilter{Completed: &done}, 2024, 2)
	require.NoError(t, err)
	assert.True(t, agg.Stats.CompletionRate.IsZero())
	assert.Equal(t, 29, agg.Calendar.DaysInMonth)
	assert.Equal(t, 4, agg.Calendar.LeadingBlanks, "2024-02-01 is a Thursday")
}

func TestAggregateTasks_InvalidMonth(t *testing.T) {
	for _, tc := range []struct{ year, month int }{{2024, 0}, {2024, 13}, {1999, 5}, {2101, 1}} {
		_, err := engine.AggregateTasks(nil, domain.TaskFilter{}, tc.year, tc.month)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "%d-%d", tc.year, tc.month)
	}
}

func TestSortTasks_UntimedLast(t *testing.T) {
	tasks := []domain.Task{
		{TaskID: "a", Date: day("2024-03-02")},
		{TaskID: "b", Date: day("2024-03-02"), Time: ptr("18:00")},
		{TaskID: "c", Date: day("2024-03-01")},
	}
	engine.SortTasks(tasks)
	assert.Equal(t, []string{"c", "b", "a"}, []string{tasks[0].TaskID, tasks[1].TaskID, tasks[2].TaskID})
}

func TestValidateTask(t *testing.T) {
	valid := domain.Task{Title: "Reunião", Kind: domain.TaskKindMeeting, Date: day("2024-03-01"), Time: ptr("9:05")}
	got, err := engine.ValidateTask(valid)
	require.NoError(t, err)
	assert.Equal(t, "09:05", *got.Time)

	blank := valid
	blank.Time = ptr("")
	got, err = engine.ValidateTask(blank)
	require.NoError(t, err)
	assert.Nil(t, got.Time)

	for name, mutate := range map[string]func(t *domain.Task){
		"bad time":  func(t *domain.Task) { t.Time = ptr("25:99") },
		"bad kind":  func(t *domain.Task) { t.Kind = "party" },
		"no title":  func(t *domain.Task) { t.Title = "" },
		"zero date": func(t *domain.Task) { t.Date = time.Time{} },
	} {
		task := valid
		mutate(&task)
		_, err := engine.ValidateTask(task)
		assert.ErrorIs(t, err, apperrors.ErrValidation, name)
	}
}
