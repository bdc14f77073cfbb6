package services

import (
	"fmt"

	"github.com/angemarius939/datarw-core/internal/models"
)

// Activity list mutations mirror the survey builder: copy-on-write, index
// contract violations fail with out_of_range.

// AddMilestone appends a milestone.
func AddMilestone(a models.Activity, m models.Milestone) models.Activity {
	out := a.Clone()
	out.Milestones = append(out.Milestones, m)
	return out
}

// UpdateMilestone replaces the milestone at index.
func UpdateMilestone(a models.Activity, index int, m models.Milestone) (models.Activity, error) {
	out := a.Clone()
	if index < 0 || index >= len(out.Milestones) {
		return out, NewOutOfRangeError(fmt.Sprintf("milestone index %d out of range [0,%d)", index, len(out.Milestones)))
	}
	out.Milestones[index] = m
	return out, nil
}

// RemoveMilestone deletes the milestone at index.
func RemoveMilestone(a models.Activity, index int) (models.Activity, error) {
	out := a.Clone()
	if index < 0 || index >= len(out.Milestones) {
		return out, NewOutOfRangeError(fmt.Sprintf("milestone index %d out of range [0,%d)", index, len(out.Milestones)))
	}
	out.Milestones = append(out.Milestones[:index], out.Milestones[index+1:]...)
	return out, nil
}

// MoveMilestone swaps the milestone one position up or down; boundary moves
// are no-ops.
func MoveMilestone(a models.Activity, index int, dir MoveDirection) (models.Activity, error) {
	out := a.Clone()
	if index < 0 || index >= len(out.Milestones) {
		return out, NewOutOfRangeError(fmt.Sprintf("milestone index %d out of range [0,%d)", index, len(out.Milestones)))
	}
	j := index
	switch dir {
	case MoveUp:
		j = index - 1
	case MoveDown:
		j = index + 1
	default:
		return out, NewInvalidError(fmt.Sprintf("unknown move direction %q", dir))
	}
	if j < 0 || j >= len(out.Milestones) {
		return out, nil
	}
	out.Milestones[index], out.Milestones[j] = out.Milestones[j], out.Milestones[index]
	return out, nil
}

// AddDeliverable appends a deliverable.
func AddDeliverable(a models.Activity, d string) models.Activity {
	out := a.Clone()
	out.Deliverables = append(out.Deliverables, d)
	return out
}

// UpdateDeliverable replaces the deliverable at index.
func UpdateDeliverable(a models.Activity, index int, d string) (models.Activity, error) {
	out := a.Clone()
	if index < 0 || index >= len(out.Deliverables) {
		return out, NewOutOfRangeError(fmt.Sprintf("deliverable index %d out of range [0,%d)", index, len(out.Deliverables)))
	}
	out.Deliverables[index] = d
	return out, nil
}

// RemoveDeliverable deletes the deliverable at index.
func RemoveDeliverable(a models.Activity, index int) (models.Activity, error) {
	out := a.Clone()
	if index < 0 || index >= len(out.Deliverables) {
		return out, NewOutOfRangeError(fmt.Sprintf("deliverable index %d out of range [0,%d)", index, len(out.Deliverables)))
	}
	out.Deliverables = append(out.Deliverables[:index], out.Deliverables[index+1:]...)
	return out, nil
}
