package scheduler

import (
	"sort"

	"github.com/prakharVirus1289/calender-scheduler/core/model"
)

// rankTasks orders tasks for a day's allocation pass. The composite key is,
// in descending precedence: incomplete before complete, in-progress before
// not-yet-started, ascending urgency score, ascending priority value. The
// sort is stable, so exact ties keep their input order.
func rankTasks(tasks []*model.Task, currentDay int) []*model.Task {
	ranked := make([]*model.Task, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.IsComplete() != b.IsComplete() {
			return !a.IsComplete()
		}
		if a.InProgress != b.InProgress {
			return a.InProgress
		}
		ua, ub := a.UrgencyScore(currentDay), b.UrgencyScore(currentDay)
		if ua != ub {
			return ua < ub
		}
		return a.Priority < b.Priority
	})
	return ranked
}
