// Package ordering keeps each (project, status) board column's positions a
// dense 0..n-1 sequence. Columns are human-curated and small, so a full
// renumber per move is cheaper and safer than sparse/fractional positions.
package ordering

import (
	"sort"

	"taskboard/internal/core/domain"
)

// Sort orders a column for display: position ascending, and for equal
// positions the more recently created task first.
func Sort(column []domain.Task) {
	sort.SliceStable(column, func(i, j int) bool {
		if column[i].Position != column[j].Position {
			return column[i].Position < column[j].Position
		}
		return column[i].CreatedAt.After(column[j].CreatedAt)
	})
}

// AppendIndex is the position a task created in this column receives.
func AppendIndex(column []domain.Task) int {
	return len(column)
}

// MoveWithin returns the column's task ids after moving taskID to target,
// in their new display order. Targets past the end clamp to the last slot.
// If taskID is not in the column the order is returned unchanged.
func MoveWithin(column []domain.Task, taskID int64, target int) []int64 {
	ids := idsOf(column)
	from := indexOf(ids, taskID)
	if from < 0 {
		return ids
	}

	ids = append(ids[:from], ids[from+1:]...)
	target = clamp(target, len(ids))
	ids = append(ids[:target], append([]int64{taskID}, ids[target:]...)...)
	return ids
}

// Remove returns the column's task ids with taskID taken out, closing the gap.
func Remove(column []domain.Task, taskID int64) []int64 {
	ids := idsOf(column)
	at := indexOf(ids, taskID)
	if at < 0 {
		return ids
	}
	return append(ids[:at], ids[at+1:]...)
}

// InsertAt returns the column's task ids with taskID inserted at target.
// The task must not already be in the column; targets past the end append.
func InsertAt(column []domain.Task, taskID int64, target int) []int64 {
	ids := idsOf(column)
	target = clamp(target, len(ids))
	return append(ids[:target], append([]int64{taskID}, ids[target:]...)...)
}

func idsOf(column []domain.Task) []int64 {
	ids := make([]int64, 0, len(column))
	for _, t := range column {
		ids = append(ids, t.ID)
	}
	return ids
}

func indexOf(ids []int64, taskID int64) int {
	for i, id := range ids {
		if id == taskID {
			return i
		}
	}
	return -1
}

func clamp(target, length int) int {
	if target < 0 {
		return 0
	}
	if target > length {
		return length
	}
	return target
}
