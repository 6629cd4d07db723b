package skills

import (
	"errors"
	"testing"
)

func TestDefaultAbilitiesValid(t *testing.T) {
	if err := DefaultAbilities().Validate(); err != nil {
		t.Fatalf("default abilities invalid: %v", err)
	}
}

func TestAbilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     AbilitySet
		wantErr bool
	}{
		{"empty", AbilitySet{}, false},
		{"missing prerequisite", NewAbilitySet(SpecialAbility{Name: "a", Prerequisites: []string{"b"}}), true},
		{"required and invalid", NewAbilitySet(
			SpecialAbility{Name: "a", Prerequisites: []string{"b"}, Invalid: []string{"b"}},
			SpecialAbility{Name: "b"},
		), true},
		{"misfiled", AbilitySet{"a": {Name: "b"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetXPCost(t *testing.T) {
	set := DefaultAbilities()
	if err := set.SetXPCost("sniper", 75); err != nil {
		t.Fatalf("SetXPCost: %v", err)
	}
	if set["sniper"].XPCost != 75 {
		t.Errorf("sniper cost = %d", set["sniper"].XPCost)
	}
	if err := set.SetXPCost("sniper", -1); err == nil {
		t.Error("negative cost accepted")
	}
	if err := set.SetXPCost("teleport", 10); !errors.Is(err, ErrUnknownAbility) {
		t.Errorf("SetXPCost(unknown) = %v", err)
	}
}

func TestAbilityCloneIsDeep(t *testing.T) {
	set := DefaultAbilities()
	c := set.Clone()
	c["melee_master"].Prerequisites[0] = "changed"
	c["hot_dog"].XPCost = 1

	if set["melee_master"].Prerequisites[0] != "melee_specialist" || set["hot_dog"].XPCost != 30 {
		t.Error("clone shares data with the original set")
	}
}

func TestListSortedByName(t *testing.T) {
	list := DefaultAbilities().List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("list not sorted at %d: %s > %s", i, list[i-1].Name, list[i].Name)
		}
	}
}
