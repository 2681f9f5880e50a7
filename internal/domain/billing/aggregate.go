package billing

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/domain/entity"
)

// GroupDimension selects which field of a time entry supplies the group key.
type GroupDimension string

const (
	GroupByProject GroupDimension = "project"
	GroupByTask    GroupDimension = "task"
	GroupByUser    GroupDimension = "user"
)

// IsValidGroupDimension reports whether the given dimension is supported.
func IsValidGroupDimension(dim GroupDimension) bool {
	return dim == GroupByProject || dim == GroupByTask || dim == GroupByUser
}

// LabelFunc resolves a display label for a group key. A nil LabelFunc leaves
// the key's string form as the label.
type LabelFunc func(key uuid.UUID) string

// AggregationGroup is a derived bucket of time entries sharing one dimension.
type AggregationGroup struct {
	Key   uuid.UUID
	Label string
	// TotalMinutes is the sum of member durations.
	TotalMinutes int
	// TotalHours is TotalMinutes/60 rounded to one decimal place.
	TotalHours decimal.Decimal
	// TotalAmount is the sum of minutes/60 * rate over members, rounded to
	// cents. Members without a rate contribute nothing here but still count
	// toward minutes and hours.
	TotalAmount decimal.Decimal
	// Entries holds the members most-recent-first. Entries sharing a work
	// date keep their original relative order.
	Entries []*entity.TimeEntry
}

// Summary holds aggregate figures over an arbitrary set of time entries,
// typically the caller's current selection.
type Summary struct {
	TotalHours            decimal.Decimal
	TotalAmount           decimal.Decimal
	EntriesCount          int
	DistinctUsersCount    int
	DistinctProjectsCount int
}

var sixty = decimal.NewFromInt(60)

// GroupEntries buckets time entries by the chosen dimension in a single pass.
// Output groups follow first-seen-key order so a fresh tally never reshuffles
// groups the caller is already displaying. The input slice is not modified.
func GroupEntries(entries []*entity.TimeEntry, dim GroupDimension, labelFor LabelFunc) []*AggregationGroup {
	groups := make([]*AggregationGroup, 0)
	index := make(map[uuid.UUID]*AggregationGroup)

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		key := groupKey(entry, dim)
		group, ok := index[key]
		if !ok {
			group = &AggregationGroup{Key: key, Label: key.String()}
			if labelFor != nil {
				group.Label = labelFor(key)
			}
			index[key] = group
			groups = append(groups, group)
		}

		group.Entries = append(group.Entries, entry)
		group.TotalMinutes += entry.DurationMinutes
		group.TotalAmount = group.TotalAmount.Add(entryAmount(entry))
	}

	for _, group := range groups {
		group.TotalHours = Round1(decimal.NewFromInt(int64(group.TotalMinutes)).Div(sixty))
		group.TotalAmount = Round2(group.TotalAmount)
		sortEntriesMostRecentFirst(group.Entries)
	}

	return groups
}

// ComputeSummary aggregates a caller-supplied subset of entries. Selection
// state is owned by the caller; this only sums what it is handed.
func ComputeSummary(entries []*entity.TimeEntry) Summary {
	totalMinutes := 0
	amount := decimal.Zero
	users := make(map[uuid.UUID]struct{})
	projects := make(map[uuid.UUID]struct{})
	count := 0

	for _, entry := range entries {
		if entry == nil {
			continue
		}
		count++
		totalMinutes += entry.DurationMinutes
		amount = amount.Add(entryAmount(entry))
		users[entry.UserID] = struct{}{}
		projects[entry.ProjectID] = struct{}{}
	}

	return Summary{
		TotalHours:            Round1(decimal.NewFromInt(int64(totalMinutes)).Div(sixty)),
		TotalAmount:           Round2(amount),
		EntriesCount:          count,
		DistinctUsersCount:    len(users),
		DistinctProjectsCount: len(projects),
	}
}

// entryAmount returns the unrounded billable amount of a single entry.
// Missing rates degrade to zero so hour totals stay intact.
func entryAmount(entry *entity.TimeEntry) decimal.Decimal {
	if entry.HourlyRate == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(entry.DurationMinutes)).Div(sixty).Mul(*entry.HourlyRate)
}

func groupKey(entry *entity.TimeEntry, dim GroupDimension) uuid.UUID {
	switch dim {
	case GroupByTask:
		return entry.TaskID
	case GroupByUser:
		return entry.UserID
	default:
		return entry.ProjectID
	}
}

// sortEntriesMostRecentFirst orders entries by work date descending. The sort
// is stable so entries sharing a date keep their original relative order.
func sortEntriesMostRecentFirst(entries []*entity.TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WorkDate.After(entries[j].WorkDate)
	})
}
