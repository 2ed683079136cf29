package postgres

// UserModel é o model GORM para a tabela usuarios
type UserModel struct {
	ID           string  `gorm:"type:uuid;primary_key"`
	Name         string  `gorm:"column:nome_completo;type:varchar(100);not null"`
	Email        string  `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	CPF          string  `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:senha_hash;type:varchar(255);not null"`
	Role         string  `gorm:"column:role;type:varchar(20);not null;index"`
	Balance      float64 `gorm:"column:saldo;type:decimal(10,2);not null;default:0;check:saldo >= 0"`
	Points       int     `gorm:"column:pontos;not null;default:0;check:pontos >= 0"`
	Active       bool    `gorm:"column:ativo;not null;default:true"`
	CreatedAt    int64   `gorm:"column:data_criacao;autoCreateTime;index"`
	UpdatedAt    int64   `gorm:"column:data_atualizacao;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "usuarios"
}

// TransactionModel é o model GORM para a tabela transacoes
type TransactionModel struct {
	ID              string     `gorm:"type:uuid;primary_key"`
	UserID          string     `gorm:"column:usuario_id;type:uuid;not null;index"`
	EmployeeID      *string    `gorm:"column:funcionario_id;type:uuid"`
	Date            int64      `gorm:"column:data_transacao;not null;index"`
	Fuel            string     `gorm:"column:combustivel;type:varchar(50);not null"`
	PaymentMethod   string     `gorm:"column:forma_pagamento;type:varchar(50);not null"`
	Liters          float64    `gorm:"column:litros;type:decimal(10,3);not null;default:0"`
	Amount          float64    `gorm:"column:valor;type:decimal(10,2);not null;check:valor > 0"`
	Cashback        float64    `gorm:"column:cashback;type:decimal(10,2);not null;default:0;check:cashback >= 0"`
	Points          int        `gorm:"column:pontos;not null;default:0"`
	CashbackPercent float64    `gorm:"column:porcentagem_cashback;type:decimal(5,2);not null;default:0"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:'processado'"`
	CreatedAt       int64      `gorm:"column:data_criacao;autoCreateTime"`
	User            *UserModel `gorm:"foreignKey:UserID"`
	Employee        *UserModel `gorm:"foreignKey:EmployeeID"`
}

func (TransactionModel) TableName() string {
	return "transacoes"
}

// ConfigurationModel é o model GORM para a tabela configuracoes
type ConfigurationModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Key         string `gorm:"column:chave;type:varchar(100);uniqueIndex;not null"`
	Value       string `gorm:"column:valor;type:varchar(255);not null"`
	Description string `gorm:"column:descricao;type:varchar(255)"`
	UpdatedAt   int64  `gorm:"column:data_atualizacao;autoUpdateTime"`
}

func (ConfigurationModel) TableName() string {
	return "configuracoes"
}

// CashbackCodeModel é o model GORM para a tabela codigos_cashback
type CashbackCodeModel struct {
	ID         string     `gorm:"type:uuid;primary_key"`
	UserID     string     `gorm:"column:usuario_id;type:uuid;not null;index"`
	Code       string     `gorm:"column:codigo;type:varchar(8);uniqueIndex;not null"`
	Value      float64    `gorm:"column:valor;type:decimal(10,2);not null;check:valor > 0"`
	Used       bool       `gorm:"column:usado;not null;default:false"`
	CreatedAt  int64      `gorm:"column:data_criacao;autoCreateTime"`
	ExpiresAt  int64      `gorm:"column:data_expiracao;not null;index"`
	UsedAt     *int64     `gorm:"column:data_uso"`
	EmployeeID *string    `gorm:"column:funcionario_id;type:uuid"`
	User       *UserModel `gorm:"foreignKey:UserID"`
	Employee   *UserModel `gorm:"foreignKey:EmployeeID"`
}

func (CashbackCodeModel) TableName() string {
	return "codigos_cashback"
}
