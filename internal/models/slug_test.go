package models

import (
	"errors"
	"testing"
)

func TestDeriveSlugNormalizesName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Çelik Vida M4", "celik-vida-m4"},
		{"Kükürt", "kukurt"},
		{"Boşluklu İsim", "bosluklu-isim"},
		{"zaten-slug", "zaten-slug"},
	}

	for _, tc := range cases {
		got, err := DeriveSlug(tc.name)
		if err != nil {
			t.Fatalf("DeriveSlug(%q) hata döndü: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("DeriveSlug(%q) = %q, beklenen %q", tc.name, got, tc.want)
		}
	}
}

func TestDeriveSlugDeterministic(t *testing.T) {
	first, err := DeriveSlug("Alüminyum Profil 20x20")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	second, err := DeriveSlug("Alüminyum Profil 20x20")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if first != second {
		t.Errorf("aynı isim farklı slug üretti: %q != %q", first, second)
	}
}

func TestDeriveSlugRejectsUnsluggableName(t *testing.T) {
	if _, err := DeriveSlug("!!!"); !errors.Is(err, ErrUnsluggable) {
		t.Errorf("sembollerden oluşan isim için ErrUnsluggable bekleniyordu, dönen: %v", err)
	}
}
