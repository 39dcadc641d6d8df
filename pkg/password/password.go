package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt solo admite 72 bytes; las entradas más largas se reducen con SHA-256 antes de hashear.
const bcryptMaxBytes = 72

// ErrMismatch la contraseña no corresponde al hash almacenado.
var ErrMismatch = errors.New("password: no coincide")

// Hasher genera y compara hashes bcrypt. Nunca registrar ni persistir la contraseña en texto plano.
type Hasher struct {
	cost int
}

// NewHasher acota cost al rango admitido por bcrypt; 0 usa bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	switch {
	case cost <= 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plain listo para almacenar.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prepare(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare devuelve nil si plain corresponde a hash; ErrMismatch si no.
func (h *Hasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prepare(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

// prepare deja intactas las contraseñas de hasta 72 bytes, así los hashes existentes siguen validando.
func prepare(plain string) []byte {
	if len(plain) <= bcryptMaxBytes {
		return []byte(plain)
	}
	sum := sha256.Sum256([]byte(plain))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
