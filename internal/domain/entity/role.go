package entity

import (
	"fmt"
	"strings"
)

// Role rol de un usuario dentro de una organización. Conjunto cerrado y totalmente ordenado:
// RoleWorker < RoleManager < RoleOwner. Agregar un rol exige ubicarlo en roleOrder.
type Role string

// Roles válidos para Membership.
const (
	RoleWorker  Role = "WORKER"
	RoleManager Role = "MANAGER"
	RoleOwner   Role = "OWNER"
)

// roleOrder de menor a mayor privilegio.
var roleOrder = [...]Role{RoleWorker, RoleManager, RoleOwner}

// Roles devuelve todos los roles de menor a mayor privilegio.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder[:])
	return out
}

// ParseRole acepta el nombre del rol sin distinguir mayúsculas.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
	return r, nil
}

// Valid informa si r pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	return r.Rank() > 0
}

// Rank posición en el orden, empezando en 1. Un rol desconocido vale 0 y no satisface ningún requisito.
func (r Role) Rank() int {
	for i, known := range roleOrder {
		if r == known {
			return i + 1
		}
	}
	return 0
}

// Compare devuelve -1, 0 o 1 según r sea menor, igual o mayor que other.
func (r Role) Compare(other Role) int {
	a, b := r.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AtLeast comparación no estricta r >= min. Falla siempre si alguno de los dos es desconocido.
func (r Role) AtLeast(min Role) bool {
	if !r.Valid() || !min.Valid() {
		return false
	}
	return r.Compare(min) >= 0
}

func (r Role) String() string { return string(r) }
