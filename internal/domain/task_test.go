package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    TaskStatus
		wantErr bool
	}{
		{name: "pending", text: "PENDING", want: TaskStatusPending},
		{name: "in progress", text: "IN_PROGRESS", want: TaskStatusInProgress},
		{name: "completed", text: "COMPLETED", want: TaskStatusCompleted},
		{name: "lowercase is rejected", text: "pending", wantErr: true},
		{name: "display label is rejected", text: "In Progress", wantErr: true},
		{name: "empty", text: "", wantErr: true},
		{name: "garbage", text: "DONE", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTaskStatus(tc.text)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTaskPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    TaskPriority
		wantErr bool
	}{
		{name: "low", text: "LOW", want: TaskPriorityLow},
		{name: "medium", text: "MEDIUM", want: TaskPriorityMedium},
		{name: "high", text: "HIGH", want: TaskPriorityHigh},
		{name: "lowercase is rejected", text: "high", wantErr: true},
		{name: "garbage", text: "URGENT", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTaskPriority(tc.text)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriority)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDisplayNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Pending", TaskStatusPending.DisplayName())
	assert.Equal(t, "In Progress", TaskStatusInProgress.DisplayName())
	assert.Equal(t, "Completed", TaskStatusCompleted.DisplayName())

	assert.Equal(t, "Low", TaskPriorityLow.DisplayName())
	assert.Equal(t, "Medium", TaskPriorityMedium.DisplayName())
	assert.Equal(t, "High", TaskPriorityHigh.DisplayName())

	// Unknown values map to an empty label, never a panic.
	assert.Equal(t, "", TaskStatus("DONE").DisplayName())
	assert.Equal(t, "", TaskPriority("URGENT").DisplayName())
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults for empty enums", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask("Write report", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
	})

	t.Run("keeps explicit enums", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask("Write report", "quarterly numbers", TaskStatusInProgress, TaskPriorityHigh)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusInProgress, task.Status)
		assert.Equal(t, TaskPriorityHigh, task.Priority)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		t.Parallel()
		_, err := NewTask("", "", "", "")
		assert.ErrorIs(t, err, ErrEmptyTitle)

		_, err = NewTask("x", "", "DONE", "")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	valid := Task{
		Title:    "Write report",
		Status:   TaskStatusPending,
		Priority: TaskPriorityMedium,
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{name: "valid task", mutate: func(t *Task) {}},
		{
			name:    "empty title",
			mutate:  func(t *Task) { t.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			mutate:  func(t *Task) { t.Title = strings.Repeat("a", 256) },
			wantErr: ErrTitleTooLong,
		},
		{
			name:   "title at limit",
			mutate: func(t *Task) { t.Title = strings.Repeat("a", 255) },
		},
		{
			name:   "multibyte title at limit",
			mutate: func(t *Task) { t.Title = strings.Repeat("é", 255) },
		},
		{
			name:    "multibyte title over limit",
			mutate:  func(t *Task) { t.Title = strings.Repeat("é", 256) },
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "description too long",
			mutate:  func(t *Task) { t.Description = strings.Repeat("a", 1001) },
			wantErr: ErrDescriptionTooLong,
		},
		{
			name:   "description at limit",
			mutate: func(t *Task) { t.Description = strings.Repeat("a", 1000) },
		},
		{
			name:   "multibyte description at limit",
			mutate: func(t *Task) { t.Description = strings.Repeat("é", 1000) },
		},
		{
			name:    "invalid status",
			mutate:  func(t *Task) { t.Status = "DONE" },
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "invalid priority",
			mutate:  func(t *Task) { t.Priority = "URGENT" },
			wantErr: ErrInvalidPriority,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			task := valid
			tc.mutate(&task)
			err := task.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
