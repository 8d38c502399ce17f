package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/shiftctl/internal/errors"
	"github.com/careops/shiftctl/internal/rbac"
)

func validShiftInput() ShiftInput {
	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	return ShiftInput{
		DepartmentID:       2,
		StartTime:          start,
		EndTime:            start.Add(8 * time.Hour),
		RequiredRole:       rbac.RoleNurse,
		RequiredStaffCount: 3,
	}
}

func TestCreateShiftValidation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach the network")
	}))

	tests := []struct {
		name   string
		mutate func(*ShiftInput)
	}{
		{"missing department", func(in *ShiftInput) { in.DepartmentID = 0 }},
		{"missing start", func(in *ShiftInput) { in.StartTime = time.Time{} }},
		{"missing end", func(in *ShiftInput) { in.EndTime = time.Time{} }},
		{"end before start", func(in *ShiftInput) { in.EndTime = in.StartTime.Add(-time.Hour) }},
		{"end equals start", func(in *ShiftInput) { in.EndTime = in.StartTime }},
		{"missing role", func(in *ShiftInput) { in.RequiredRole = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validShiftInput()
			tt.mutate(&input)

			_, err := client.CreateShift(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}
}

func TestCreateShift(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id": 11, "department_id": 2, "required_role": "nurse", "required_staff_count": 3,
			"start_time": "2026-09-01T08:00:00Z", "end_time": "2026-09-01T16:00:00Z"}`))
	}))

	shift, err := client.CreateShift(context.Background(), validShiftInput())
	require.NoError(t, err)

	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/shifts", gotPath)
	assert.Equal(t, 11, shift.ID)
	assert.Equal(t, rbac.RoleNurse, shift.RequiredRole)
}

func TestUpdateShiftRangeCheck(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid patch must not reach the network")
	}))

	start := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	_, err := client.UpdateShift(context.Background(), 5, ShiftPatch{
		StartTime: &start,
		EndTime:   &end,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestUpdateShiftPartialPatchSkipsRangeCheck(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/shifts/5", r.URL.Path)
		w.Write([]byte(`{"id": 5, "department_id": 2}`))
	}))

	// Only one bound changes; the backend owns the full-range check.
	end := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	_, err := client.UpdateShift(context.Background(), 5, ShiftPatch{EndTime: &end})
	require.NoError(t, err)
}

func TestDeleteShift(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteShift(context.Background(), 9))
	assert.Equal(t, "DELETE", gotMethod)
	assert.Equal(t, "/shifts/9", gotPath)
}
