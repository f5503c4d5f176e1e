package domain

import "testing"

func TestEligibleSubordinates_StrictlyLowerRanks(t *testing.T) {
	all := AllTypes()

	for i, agentType := range all {
		eligible := EligibleSubordinates(agentType)
		if len(eligible) != len(all)-i-1 {
			t.Fatalf("%s: expected %d eligible subordinate types, got %d", agentType, len(all)-i-1, len(eligible))
		}
		for j, sub := range eligible {
			if sub != all[i+1+j] {
				t.Fatalf("%s: expected %s at position %d, got %s", agentType, all[i+1+j], j, sub)
			}
		}
	}
}

func TestEligibleSubordinates_InternIsEmpty(t *testing.T) {
	if got := EligibleSubordinates(Intern); len(got) != 0 {
		t.Fatalf("expected Intern to have no eligible subordinates, got %v", got)
	}
}

func TestEligibleSubordinates_UnknownTypeIsEmpty(t *testing.T) {
	if got := EligibleSubordinates(AgentType("Janitor")); len(got) != 0 {
		t.Fatalf("expected unknown type to have no eligible subordinates, got %v", got)
	}
}

func TestCanSupervise(t *testing.T) {
	cases := []struct {
		superior    AgentType
		subordinate AgentType
		want        bool
	}{
		{Owner, Partner, true},
		{Owner, Intern, true},
		{Partner, Owner, false},
		{Advocate, Advocate, false},
		{Intern, Paralegal, false},
		{SeniorAdvocate, Paralegal, true},
		{AgentType("Janitor"), Intern, false},
		{Owner, AgentType("Janitor"), false},
	}

	for _, tc := range cases {
		if got := CanSupervise(tc.superior, tc.subordinate); got != tc.want {
			t.Fatalf("CanSupervise(%s, %s) = %v, want %v", tc.superior, tc.subordinate, got, tc.want)
		}
	}
}

func TestIsValidType(t *testing.T) {
	for _, agentType := range AllTypes() {
		if !IsValidType(agentType) {
			t.Fatalf("expected %s to be valid", agentType)
		}
	}
	if IsValidType(AgentType("Janitor")) {
		t.Fatal("expected unknown type to be invalid")
	}
}

func TestRoleFor(t *testing.T) {
	if RoleFor(Owner) != "admin" || RoleFor(Partner) != "admin" {
		t.Fatal("expected Owner and Partner to map to admin")
	}
	for _, agentType := range []AgentType{CEO, ManagingDirector, SeniorAdvocate, Advocate, Paralegal, Intern} {
		if RoleFor(agentType) != "agent" {
			t.Fatalf("expected %s to map to agent", agentType)
		}
	}
}
