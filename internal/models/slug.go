package models

import (
	"errors"

	"github.com/gosimple/slug"
)

// ErrUnsluggable: isim yalnızca çevrilemeyen karakterlerden oluşuyorsa
// türetme boş sonuç verir ve kayıt reddedilir.
var ErrUnsluggable = errors.New("isimden geçerli bir slug türetilemedi")

// DeriveSlug bir görünen isimden URL-güvenli, küçük harfli, ASCII bir
// tanımlayıcı üretir. Saf ve deterministiktir: aynı isim her zaman aynı
// slug'ı verir.
func DeriveSlug(name string) (string, error) {
	s := slug.Make(name)
	if s == "" {
		return "", ErrUnsluggable
	}
	return s, nil
}
