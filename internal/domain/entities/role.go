package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleCustomer Role = "cliente"
	RoleEmployee Role = "funcionario"
	RoleAdmin    Role = "admin"
)

// IsValid verifica se o role é um dos papéis conhecidos
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleEmployee || r == RoleAdmin
}

// Permission representa uma permissão específica
type Permission string

const (
	// Permissões de abastecimento e extrato
	PermissionPurchaseRecord   Permission = "purchases.record"
	PermissionTransactionsRead Permission = "transactions.read"

	// Permissões de cashback
	PermissionCodeCreate   Permission = "codes.create"
	PermissionCodeValidate Permission = "codes.validate"

	// Permissões administrativas
	PermissionCustomerLookup Permission = "customers.lookup"
	PermissionAdminStats     Permission = "admin.stats"
	PermissionAdminReset     Permission = "admin.reset"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleCustomer: {
		PermissionTransactionsRead,
		PermissionCodeCreate,
	},
	RoleEmployee: {
		PermissionTransactionsRead,
		PermissionPurchaseRecord,
		PermissionCodeValidate,
		PermissionCustomerLookup,
	},
	RoleAdmin: {
		PermissionTransactionsRead,
		PermissionAdminStats,
		PermissionAdminReset,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
