package common

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

func IsValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller
}
