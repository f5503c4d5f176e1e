package service

import (
	"testing"

	"lexportal_backend/internal/agents/repository"
)

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{0, 0, 1, defaultPageSize},
		{-3, 5, 1, 5},
		{2, 10, 2, 10},
		{1, 500, 1, maxPageSize},
	}

	for _, tc := range cases {
		page, pageSize := normalizePaging(tc.page, tc.pageSize)
		if page != tc.wantPage || pageSize != tc.wantPageSize {
			t.Fatalf("normalizePaging(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, page, pageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}

func TestToListResponse_TotalPages(t *testing.T) {
	// 12 filtered results at page size 5: three pages, the last holding 2 items.
	lastPage := make([]repository.Agent, 2)
	resp := toListResponse(lastPage, 12, 3, 5)

	if resp.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", resp.TotalPages)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items on the last page, got %d", len(resp.Items))
	}
	if resp.Total != 12 || resp.Page != 3 || resp.PageSize != 5 {
		t.Fatalf("unexpected list metadata: %+v", resp)
	}
}

func TestFilterValue_AllMeansNoFilter(t *testing.T) {
	if got := filterValue("All"); got != "" {
		t.Fatalf("expected 'All' to clear the filter, got %q", got)
	}
	if got := filterValue("all"); got != "" {
		t.Fatalf("expected 'all' to clear the filter, got %q", got)
	}
	if got := filterValue(" Partner "); got != "Partner" {
		t.Fatalf("expected trimmed filter value, got %q", got)
	}
}

func TestCheckSubordinates(t *testing.T) {
	subs := []repository.Agent{
		{AgentType: "Advocate"},
		{AgentType: "Paralegal"},
	}

	if err := checkSubordinates("Senior Advocate", subs); err != nil {
		t.Fatalf("Senior Advocate outranks both subordinates: %v", err)
	}
	if err := checkSubordinates("Advocate", subs); err == nil {
		t.Fatal("demoting to Advocate leaves an Advocate subordinate at equal rank")
	}
	if err := checkSubordinates("Intern", subs); err == nil {
		t.Fatal("demoting below the subordinates must be rejected")
	}
	if err := checkSubordinates("Owner", nil); err != nil {
		t.Fatalf("no subordinates means no constraint: %v", err)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  Jane.Doe@Firm.COM "); got != "jane.doe@firm.com" {
		t.Fatalf("unexpected normalized email %q", got)
	}
}
