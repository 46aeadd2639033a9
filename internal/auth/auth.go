package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Authorizer: Masa silme gibi yıkıcı işlemleri koruyan yetki kontrolü.
// Bugünkü hali tek paylaşımlı paroladır; gerçek bir kimlik sistemi
// takılacaksa yalnızca bu arayüzün yeni bir implementasyonu yazılır,
// masa yaşam döngüsü koduna dokunulmaz.
type Authorizer interface {
	Authorize(password string) bool
}

// StaticPassword: Paylaşımlı sabit parola. Hash tanımlıysa bcrypt ile,
// değilse sabit zamanlı düz karşılaştırma ile doğrular.
type StaticPassword struct {
	Plain string
	Hash  string
}

func (s StaticPassword) Authorize(password string) bool {
	if s.Hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.Hash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.Plain), []byte(password)) == 1
}
