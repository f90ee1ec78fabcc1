package domain

import (
	"errors"
	"testing"
)

func TestAuthorize_UpdateStatus(t *testing.T) {
	cases := []struct {
		role Role
		want error
	}{
		{RoleCourier, nil},
		{RoleAdmin, nil},
		{RoleUser, ErrForbidden},
	}
	for _, tc := range cases {
		err := Authorize(Principal{UserID: "u1", Role: tc.role}, ActionOrderUpdateStatus, "")
		if !errors.Is(err, tc.want) && err != tc.want {
			t.Fatalf("role %s: expected %v, got %v", tc.role, tc.want, err)
		}
	}
}

func TestAuthorize_AssignCourierOnly(t *testing.T) {
	if err := Authorize(Principal{UserID: "c1", Role: RoleCourier}, ActionOrderAssign, ""); err != nil {
		t.Fatalf("courier should assign: %v", err)
	}
	// Admins do not self-assign orders.
	if err := Authorize(Principal{UserID: "a1", Role: RoleAdmin}, ActionOrderAssign, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin, got %v", err)
	}
	if err := Authorize(Principal{UserID: "u1", Role: RoleUser}, ActionOrderAssign, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for user, got %v", err)
	}
}

func TestAuthorize_OwnerOrAdmin(t *testing.T) {
	for _, action := range []Action{ActionOrderDelete, ActionUserDelete} {
		if err := Authorize(Principal{UserID: "u1", Role: RoleUser}, action, "u1"); err != nil {
			t.Fatalf("%s: owner should be allowed: %v", action, err)
		}
		if err := Authorize(Principal{UserID: "a1", Role: RoleAdmin}, action, "u1"); err != nil {
			t.Fatalf("%s: admin should be allowed: %v", action, err)
		}
		if err := Authorize(Principal{UserID: "u2", Role: RoleUser}, action, "u1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden for non-owner, got %v", action, err)
		}
		if err := Authorize(Principal{UserID: "c1", Role: RoleCourier}, action, "u1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden for courier, got %v", action, err)
		}
	}
}

func TestAuthorize_UnknownAction(t *testing.T) {
	if err := Authorize(Principal{UserID: "a1", Role: RoleAdmin}, Action("nope"), ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unknown action, got %v", err)
	}
}

func TestTypicalTransition(t *testing.T) {
	if !StatusCreated.TypicalTransition(StatusAssigned) {
		t.Fatalf("created -> assigned should be typical")
	}
	if StatusCreated.TypicalTransition(StatusComplete) {
		t.Fatalf("created -> completed should not be typical")
	}
	if StatusComplete.TypicalTransition(StatusCreated) {
		t.Fatalf("terminal status has no typical transitions")
	}
}
