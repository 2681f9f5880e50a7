package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/domain/entity"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(userID, projectID, taskID uuid.UUID, workDate string, minutes int, rate *decimal.Decimal) *entity.TimeEntry {
	return &entity.TimeEntry{
		ID:              uuid.New(),
		UserID:          userID,
		ProjectID:       projectID,
		TaskID:          taskID,
		WorkDate:        day(workDate),
		DurationMinutes: minutes,
		HourlyRate:      rate,
	}
}

func ratePtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestGroupEntries_ByUser(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	entries := []*entity.TimeEntry{
		entry(alice, projectID, taskID, "2026-03-02", 480, ratePtr("250")),
		entry(bob, projectID, taskID, "2026-03-03", 360, ratePtr("300")),
	}

	groups := GroupEntries(entries, GroupByUser, nil)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// Groups follow first-seen-key order.
	if groups[0].Key != alice {
		t.Errorf("expected first group keyed by first-seen user")
	}

	if groups[0].TotalHours.StringFixed(1) != "8.0" {
		t.Errorf("alice hours = %s, want 8.0", groups[0].TotalHours.StringFixed(1))
	}
	if groups[0].TotalAmount.StringFixed(2) != "2000.00" {
		t.Errorf("alice amount = %s, want 2000.00", groups[0].TotalAmount.StringFixed(2))
	}

	if groups[1].TotalHours.StringFixed(1) != "6.0" {
		t.Errorf("bob hours = %s, want 6.0", groups[1].TotalHours.StringFixed(1))
	}
	if groups[1].TotalAmount.StringFixed(2) != "1800.00" {
		t.Errorf("bob amount = %s, want 1800.00", groups[1].TotalAmount.StringFixed(2))
	}
}

func TestGroupEntries_ByProject(t *testing.T) {
	userID := uuid.New()
	projectA := uuid.New()
	projectB := uuid.New()
	taskID := uuid.New()

	entries := []*entity.TimeEntry{
		entry(userID, projectA, taskID, "2026-03-01", 60, ratePtr("100")),
		entry(userID, projectB, taskID, "2026-03-01", 30, ratePtr("100")),
		entry(userID, projectA, taskID, "2026-03-02", 90, ratePtr("100")),
	}

	groups := GroupEntries(entries, GroupByProject, nil)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].Key != projectA {
		t.Errorf("expected project A first (first-seen order)")
	}
	if groups[0].TotalMinutes != 150 {
		t.Errorf("project A minutes = %d, want 150", groups[0].TotalMinutes)
	}
	if groups[0].TotalHours.StringFixed(1) != "2.5" {
		t.Errorf("project A hours = %s, want 2.5", groups[0].TotalHours.StringFixed(1))
	}
	if groups[0].TotalAmount.StringFixed(2) != "250.00" {
		t.Errorf("project A amount = %s, want 250.00", groups[0].TotalAmount.StringFixed(2))
	}
}

func TestGroupEntries_MembersMostRecentFirst(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	oldest := entry(userID, projectID, taskID, "2026-01-05", 60, nil)
	middle := entry(userID, projectID, taskID, "2026-01-10", 60, nil)
	newest := entry(userID, projectID, taskID, "2026-01-15", 60, nil)

	groups := GroupEntries([]*entity.TimeEntry{oldest, newest, middle}, GroupByProject, nil)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	members := groups[0].Entries
	if members[0] != newest || members[1] != middle || members[2] != oldest {
		t.Errorf("expected members ordered most recent first")
	}
}

func TestGroupEntries_SameDateKeepsRelativeOrder(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	first := entry(userID, projectID, taskID, "2026-01-10", 30, nil)
	second := entry(userID, projectID, taskID, "2026-01-10", 45, nil)

	groups := GroupEntries([]*entity.TimeEntry{first, second}, GroupByTask, nil)

	members := groups[0].Entries
	if members[0] != first || members[1] != second {
		t.Errorf("expected same-date entries to keep their original relative order")
	}
}

func TestGroupEntries_MissingRateCountsHoursOnly(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	entries := []*entity.TimeEntry{
		entry(userID, projectID, taskID, "2026-02-01", 120, ratePtr("50")),
		entry(userID, projectID, taskID, "2026-02-02", 60, nil),
	}

	groups := GroupEntries(entries, GroupByUser, nil)

	if groups[0].TotalMinutes != 180 {
		t.Errorf("minutes = %d, want 180", groups[0].TotalMinutes)
	}
	if groups[0].TotalHours.StringFixed(1) != "3.0" {
		t.Errorf("hours = %s, want 3.0", groups[0].TotalHours.StringFixed(1))
	}
	// The unrated entry contributes nothing to the amount.
	if groups[0].TotalAmount.StringFixed(2) != "100.00" {
		t.Errorf("amount = %s, want 100.00", groups[0].TotalAmount.StringFixed(2))
	}
}

func TestGroupEntries_RoundsOnlyAtOutput(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	// 50 minutes at 100/h is 83.333...; three of them sum to 250 exactly.
	// Rounding per entry first would give 83.33 * 3 = 249.99.
	entries := []*entity.TimeEntry{
		entry(userID, projectID, taskID, "2026-02-01", 50, ratePtr("100")),
		entry(userID, projectID, taskID, "2026-02-02", 50, ratePtr("100")),
		entry(userID, projectID, taskID, "2026-02-03", 50, ratePtr("100")),
	}

	groups := GroupEntries(entries, GroupByProject, nil)

	if groups[0].TotalAmount.StringFixed(2) != "250.00" {
		t.Errorf("amount = %s, want 250.00", groups[0].TotalAmount.StringFixed(2))
	}
	if groups[0].TotalHours.StringFixed(1) != "2.5" {
		t.Errorf("hours = %s, want 2.5", groups[0].TotalHours.StringFixed(1))
	}
}

func TestGroupEntries_LabelFunc(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	taskID := uuid.New()

	entries := []*entity.TimeEntry{
		entry(userID, projectID, taskID, "2026-02-01", 60, nil),
	}

	groups := GroupEntries(entries, GroupByProject, func(key uuid.UUID) string {
		return "Website Redesign"
	})

	if groups[0].Label != "Website Redesign" {
		t.Errorf("label = %q, want %q", groups[0].Label, "Website Redesign")
	}

	// Nil LabelFunc falls back to the key string.
	groups = GroupEntries(entries, GroupByProject, nil)
	if groups[0].Label != projectID.String() {
		t.Errorf("label = %q, want key string", groups[0].Label)
	}
}

func TestGroupEntries_MinutesPreservedAcrossDimensions(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	projectA := uuid.New()
	projectB := uuid.New()
	taskA := uuid.New()
	taskB := uuid.New()

	entries := []*entity.TimeEntry{
		entry(alice, projectA, taskA, "2026-03-01", 45, ratePtr("120")),
		entry(alice, projectB, taskB, "2026-03-02", 90, nil),
		entry(bob, projectA, taskB, "2026-03-02", 30, ratePtr("80")),
		entry(bob, projectB, taskA, "2026-03-03", 135, ratePtr("80")),
		nil,
	}

	inputMinutes := 0
	for _, e := range entries {
		if e != nil {
			inputMinutes += e.DurationMinutes
		}
	}

	// Regrouping only moves entries between buckets; every dimension must
	// account for exactly the input minutes and the input entries.
	for _, dim := range []GroupDimension{GroupByProject, GroupByTask, GroupByUser} {
		groups := GroupEntries(entries, dim, nil)

		groupedMinutes := 0
		groupedEntries := 0
		for _, g := range groups {
			groupedMinutes += g.TotalMinutes
			groupedEntries += len(g.Entries)
		}

		if groupedMinutes != inputMinutes {
			t.Errorf("%s: grouped minutes = %d, want %d", dim, groupedMinutes, inputMinutes)
		}
		if groupedEntries != 4 {
			t.Errorf("%s: grouped entries = %d, want 4", dim, groupedEntries)
		}
	}
}

func TestComputeSummary(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	projectA := uuid.New()
	projectB := uuid.New()
	taskID := uuid.New()

	t.Run("aggregates across users and projects", func(t *testing.T) {
		entries := []*entity.TimeEntry{
			entry(alice, projectA, taskID, "2026-03-02", 480, ratePtr("250")),
			entry(bob, projectB, taskID, "2026-03-03", 360, ratePtr("300")),
			entry(alice, projectB, taskID, "2026-03-04", 60, nil),
		}

		summary := ComputeSummary(entries)

		if summary.TotalHours.StringFixed(1) != "15.0" {
			t.Errorf("hours = %s, want 15.0", summary.TotalHours.StringFixed(1))
		}
		if summary.TotalAmount.StringFixed(2) != "3800.00" {
			t.Errorf("amount = %s, want 3800.00", summary.TotalAmount.StringFixed(2))
		}
		if summary.EntriesCount != 3 {
			t.Errorf("entries = %d, want 3", summary.EntriesCount)
		}
		if summary.DistinctUsersCount != 2 {
			t.Errorf("users = %d, want 2", summary.DistinctUsersCount)
		}
		if summary.DistinctProjectsCount != 2 {
			t.Errorf("projects = %d, want 2", summary.DistinctProjectsCount)
		}
	})

	t.Run("empty selection yields zero summary", func(t *testing.T) {
		summary := ComputeSummary(nil)

		if !summary.TotalHours.IsZero() || !summary.TotalAmount.IsZero() {
			t.Errorf("expected zero totals, got %s hours / %s", summary.TotalHours, summary.TotalAmount)
		}
		if summary.EntriesCount != 0 || summary.DistinctUsersCount != 0 || summary.DistinctProjectsCount != 0 {
			t.Errorf("expected zero counts")
		}
	})

	t.Run("nil entries are skipped", func(t *testing.T) {
		entries := []*entity.TimeEntry{
			entry(alice, projectA, taskID, "2026-03-02", 30, ratePtr("120")),
			nil,
		}

		summary := ComputeSummary(entries)

		if summary.EntriesCount != 1 {
			t.Errorf("entries = %d, want 1", summary.EntriesCount)
		}
		if summary.TotalAmount.StringFixed(2) != "60.00" {
			t.Errorf("amount = %s, want 60.00", summary.TotalAmount.StringFixed(2))
		}
	})
}

func TestIsValidGroupDimension(t *testing.T) {
	for _, dim := range []GroupDimension{GroupByProject, GroupByTask, GroupByUser} {
		if !IsValidGroupDimension(dim) {
			t.Errorf("expected %q to be valid", dim)
		}
	}
	if IsValidGroupDimension("brand") {
		t.Error("expected unknown dimension to be invalid")
	}
}
