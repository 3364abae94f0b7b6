package server

import (
	"strings"
	"testing"

	"homeport/internal/waypoints"
)

func pos() waypoints.Position {
	return waypoints.Position{X: 1, Y: 64, Z: -3, World: "world"}
}

func TestCreateHomeNormalizesName(t *testing.T) {
	store := NewStore()
	owner := waypoints.User{UUID: "u-1", Name: "Steve"}

	entry, err := store.CreateHome(owner, "My Home", pos())
	if err != nil {
		t.Fatalf("CreateHome: %v", err)
	}
	if entry.Name != "My_Home" {
		t.Errorf("Name = %q, want My_Home", entry.Name)
	}
	if entry.Kind != waypoints.KindHome {
		t.Errorf("Kind = %q", entry.Kind)
	}

	homes := store.Homes("u-1")
	if len(homes) != 1 || homes[0].Name != "My_Home" {
		t.Errorf("Homes = %v", homes)
	}
}

func TestCreateHomeRejectsInvalidName(t *testing.T) {
	store := NewStore()
	owner := waypoints.User{UUID: "u-1"}

	if _, err := store.CreateHome(owner, strings.Repeat("x", 17), pos()); !waypoints.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := store.CreateHome(owner, "", pos()); !waypoints.IsValidation(err) {
		t.Errorf("expected validation error for empty name, got %v", err)
	}
	if len(store.Homes("u-1")) != 0 {
		t.Error("rejected names must not be stored")
	}
}

func TestCreateHomeDuplicate(t *testing.T) {
	store := NewStore()
	owner := waypoints.User{UUID: "u-1"}

	if _, err := store.CreateHome(owner, "Base", pos()); err != nil {
		t.Fatalf("CreateHome: %v", err)
	}
	_, err := store.CreateHome(owner, "Base", pos())
	if !waypoints.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(waypoints.UserMessage(err), "Base") {
		t.Errorf("message should name the duplicate: %q", waypoints.UserMessage(err))
	}
}

func TestCreateHomeSlotLimit(t *testing.T) {
	store := NewStore()
	store.SetDefaultSlots(2)
	owner := waypoints.User{UUID: "u-1"}

	for _, name := range []string{"one", "two"} {
		if _, err := store.CreateHome(owner, name, pos()); err != nil {
			t.Fatalf("CreateHome(%s): %v", name, err)
		}
	}
	if _, err := store.CreateHome(owner, "three", pos()); !waypoints.IsValidation(err) {
		t.Errorf("expected validation error at the limit, got %v", err)
	}

	store.SetSlots("u-1", 3)
	if _, err := store.CreateHome(owner, "three", pos()); err != nil {
		t.Errorf("raised override should allow a third home: %v", err)
	}
}

func TestDeleteHome(t *testing.T) {
	store := NewStore()
	owner := waypoints.User{UUID: "u-1"}
	if _, err := store.CreateHome(owner, "Base", pos()); err != nil {
		t.Fatalf("CreateHome: %v", err)
	}

	if err := store.DeleteHome("u-1", "Base"); err != nil {
		t.Fatalf("DeleteHome: %v", err)
	}
	if len(store.Homes("u-1")) != 0 {
		t.Error("home not removed")
	}
	if err := store.DeleteHome("u-1", "Base"); !waypoints.IsValidation(err) {
		t.Errorf("second delete should fail, got %v", err)
	}
}

func TestPublicHomes(t *testing.T) {
	store := NewStore()
	alice := waypoints.User{UUID: "a"}
	bob := waypoints.User{UUID: "b"}

	if _, err := store.CreateHome(alice, "Hidden", pos()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.CreateHome(bob, "Shared", pos()); err != nil {
		t.Fatal(err)
	}
	if err := store.SetPublic("b", "Shared", true); err != nil {
		t.Fatalf("SetPublic: %v", err)
	}

	public := store.PublicHomes()
	if len(public) != 1 || public[0].Name != "Shared" {
		t.Errorf("PublicHomes = %v", public)
	}
}

func TestWarps(t *testing.T) {
	store := NewStore()

	if _, err := store.AddWarp("Spawn", pos(), "The spawn point"); err != nil {
		t.Fatalf("AddWarp: %v", err)
	}
	if _, err := store.AddWarp("Spawn", pos(), ""); !waypoints.IsValidation(err) {
		t.Errorf("duplicate warp should fail, got %v", err)
	}

	warps := store.Warps()
	if len(warps) != 1 || warps[0].Kind != waypoints.KindWarp {
		t.Errorf("Warps = %v", warps)
	}

	if err := store.DeleteWarp("Spawn"); err != nil {
		t.Fatalf("DeleteWarp: %v", err)
	}
	if err := store.DeleteWarp("Spawn"); !waypoints.IsValidation(err) {
		t.Errorf("second delete should fail, got %v", err)
	}
}

func TestOnChangeScope(t *testing.T) {
	store := NewStore()
	var changes []string
	store.OnChange(func(owner string) { changes = append(changes, owner) })

	owner := waypoints.User{UUID: "u-1"}
	if _, err := store.CreateHome(owner, "Base", pos()); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteHome("u-1", "Base"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddWarp("Spawn", pos(), ""); err != nil {
		t.Fatal(err)
	}

	want := []string{"u-1", "u-1", ""}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes[%d] = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	store := NewStore()
	owner := waypoints.User{UUID: "u-1"}
	if _, err := store.CreateHome(owner, "Base", pos()); err != nil {
		t.Fatal(err)
	}

	homes := store.Homes("u-1")
	homes[0].Name = "Mutated"

	if store.Homes("u-1")[0].Name != "Base" {
		t.Error("mutating a returned slice must not affect the store")
	}
}
