package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestEnsureIDAssignsOnce(t *testing.T) {
	var m DefaultModel
	m.ensureID()
	if m.ID == uuid.Nil {
		t.Fatal("ensureID boş kimlik bıraktı")
	}

	assigned := m.ID
	m.ensureID()
	if m.ID != assigned {
		t.Errorf("ensureID var olan kimliği değiştirdi: %s -> %s", assigned, m.ID)
	}
}

func TestEnsureSlugDerivesFromName(t *testing.T) {
	n := NamedModel{Name: "Çinko Levha"}
	if err := n.ensureSlug(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if n.Slug != "cinko-levha" {
		t.Errorf("slug = %q, beklenen %q", n.Slug, "cinko-levha")
	}
}

func TestEnsureSlugKeepsExplicitSlug(t *testing.T) {
	n := NamedModel{Name: "Herhangi Bir İsim", Slug: "sabit-referans"}
	if err := n.ensureSlug(); err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if n.Slug != "sabit-referans" {
		t.Errorf("verilmiş slug ezildi: %q", n.Slug)
	}
}

func TestEnsureSlugPropagatesError(t *testing.T) {
	n := NamedModel{Name: "???"}
	if err := n.ensureSlug(); !errors.Is(err, ErrUnsluggable) {
		t.Errorf("ErrUnsluggable bekleniyordu, dönen: %v", err)
	}
}
