// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"folio/internal/models"
)

func TestAcademicStoreCreate(t *testing.T) {
	db := testDB(t)
	s := NewAcademicStore(db)

	a := &models.AcademicEntry{
		Degree:      "BSc Computer Science",
		Institution: "Example University",
		Year:        "2018",
		Description: "Systems focus.",
	}
	if err := s.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == uuid.Nil {
		t.Error("expected assigned UUID")
	}
}

func TestAcademicStoreCreateKeepsID(t *testing.T) {
	db := testDB(t)
	s := NewAcademicStore(db)

	id := uuid.New()
	a := &models.AcademicEntry{ID: id, Degree: "MSc", Institution: "X", Year: "2020"}
	if err := s.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != id {
		t.Errorf("id: got %s, want %s", a.ID, id)
	}
}

func TestAcademicStoreListOrder(t *testing.T) {
	db := testDB(t)
	s := NewAcademicStore(db)

	for _, year := range []string{"2015", "2021", "2018"} {
		if err := s.Create(&models.AcademicEntry{Degree: "Degree " + year, Year: year}); err != nil {
			t.Fatalf("Create %s: %v", year, err)
		}
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len: got %d, want 3", len(items))
	}
	want := []string{"2021", "2018", "2015"}
	for i, y := range want {
		if items[i].Year != y {
			t.Errorf("items[%d].Year: got %q, want %q", i, items[i].Year, y)
		}
	}
}

func TestAcademicStoreFindByID(t *testing.T) {
	db := testDB(t)
	s := NewAcademicStore(db)

	a := &models.AcademicEntry{Degree: "BSc", Institution: "Example University", Year: "2018"}
	if err := s.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.FindByID(a.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil || got.Institution != "Example University" {
		t.Errorf("FindByID: got %+v", got)
	}

	missing, err := s.FindByID(uuid.New())
	if err != nil {
		t.Fatalf("FindByID (missing): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}
}

func TestAcademicStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewAcademicStore(db)

	a := &models.AcademicEntry{Degree: "BSc", Institution: "Old", Year: "2019"}
	if err := s.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a.Institution = "New University"
	if err := s.Update(a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].Institution != "New University" {
		t.Errorf("institution: got %q, want %q", items[0].Institution, "New University")
	}
}

func TestAcademicStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewAcademicStore(db)

	a := &models.AcademicEntry{Degree: "BSc", Year: "2017"}
	if err := s.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	items, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len after delete: got %d, want 0", len(items))
	}

	// Deleting again is a silent no-op.
	if err := s.Delete(a.ID); err != nil {
		t.Errorf("Delete (missing): %v", err)
	}
}
