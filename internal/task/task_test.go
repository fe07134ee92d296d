package task

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InitialState(t *testing.T) {
	tk := New("Report", "Write report")

	assert.NotEqual(t, uuid.Nil, tk.ID)
	assert.Equal(t, "Report", tk.Title)
	assert.Equal(t, "Write report", tk.Description)
	assert.Equal(t, StatusToDo, tk.Status)
	assert.True(t, tk.ModifiedAt.Equal(tk.CreatedAt))
}

func TestNew_UniqueIDs(t *testing.T) {
	seen := map[uuid.UUID]bool{}
	for i := 0; i < 100; i++ {
		tk := New("x", "y")
		assert.False(t, seen[tk.ID])
		seen[tk.ID] = true
	}
}

func TestTask_JSONRoundTrip(t *testing.T) {
	want := New("Buy milk", "Two liters, whole")
	want.Status = StatusInProgress

	b, err := json.Marshal(want)
	require.NoError(t, err)

	var got Task
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Status, got.Status)
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
	assert.True(t, got.ModifiedAt.Equal(want.ModifiedAt))
}

func TestTask_JSONWireFormat(t *testing.T) {
	tk := New("Buy milk", "Two liters")

	b, err := json.Marshal(tk)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "created_at")
	assert.Contains(t, raw, "modified_at")
	assert.Equal(t, "to-do", raw["status"])

	// naive local datetime: no zone offset on the wire
	assert.NotContains(t, raw["created_at"], "Z")
	assert.NotContains(t, raw["created_at"], "+")
}

func TestApply_PresentFieldsOnly(t *testing.T) {
	tk := New("X", "Y")

	title := "New title"
	tk.Apply(Patch{Title: &title})

	assert.Equal(t, "New title", tk.Title)
	assert.Equal(t, "Y", tk.Description)
	assert.Equal(t, StatusToDo, tk.Status)
}

func TestApply_ZeroPatchStillTouches(t *testing.T) {
	tk := New("X", "Y")
	before := tk.ModifiedAt

	tk.Apply(Patch{})

	assert.False(t, tk.ModifiedAt.Before(before.Time))
	assert.Equal(t, "X", tk.Title)
	assert.Equal(t, "Y", tk.Description)
}

func TestSetters_DoNotTouch(t *testing.T) {
	tk := New("X", "Y")
	before := tk.ModifiedAt

	tk.SetTitle("A")
	tk.SetDescription("B")
	tk.SetStatus(StatusDone)

	assert.True(t, tk.ModifiedAt.Equal(before))

	tk.Touch()
	assert.False(t, tk.ModifiedAt.Before(before.Time))
}

func TestPatch_IsZero(t *testing.T) {
	assert.True(t, Patch{}.IsZero())

	s := StatusDone
	assert.False(t, Patch{Status: &s}.IsZero())
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatus_Cycle(t *testing.T) {
	assert.Equal(t, StatusInProgress, StatusToDo.Next())
	assert.Equal(t, StatusDone, StatusInProgress.Next())
	assert.Equal(t, StatusToDo, StatusDone.Next())

	assert.Equal(t, StatusDone, StatusToDo.Prev())
	assert.Equal(t, StatusToDo, StatusInProgress.Prev())
}

func TestStatus_Labels(t *testing.T) {
	assert.Equal(t, "To Do", StatusToDo.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Done", StatusDone.Label())
}
