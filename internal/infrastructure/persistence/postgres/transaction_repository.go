package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
)

// TransactionRepository implementa repositories.TransactionRepository
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository cria um novo TransactionRepository
func NewTransactionRepository(db *gorm.DB) repositories.TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	model := r.toModel(tx)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	tx.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	var models []*TransactionModel

	db := r.getDB(ctx)
	err := db.Where("usuario_id = ?", userID).
		Order("data_transacao DESC, data_criacao DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	txs := make([]*entities.Transaction, 0, len(models))
	for _, model := range models {
		txs = append(txs, r.toEntity(model))
	}
	return txs, nil
}

// transactionRow é a linha da listagem administrativa, com o nome do
// cliente vindo do JOIN com usuarios
type transactionRow struct {
	TransactionModel
	NomeCompleto string
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]*repositories.TransactionWithCustomer, error) {
	var rows []*transactionRow

	db := r.getDB(ctx)
	err := db.Table("transacoes").
		Select("transacoes.*, usuarios.nome_completo").
		Joins("JOIN usuarios ON usuarios.id = transacoes.usuario_id").
		Order("transacoes.data_transacao DESC, transacoes.data_criacao DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*repositories.TransactionWithCustomer, 0, len(rows))
	for _, row := range rows {
		result = append(result, &repositories.TransactionWithCustomer{
			Transaction:  *r.toEntity(&row.TransactionModel),
			CustomerName: row.NomeCompleto,
		})
	}
	return result, nil
}

func (r *TransactionRepository) Stats(ctx context.Context, since time.Time) (*repositories.TransactionStats, error) {
	var row struct {
		TotalTransacoes int64
		TotalVendas     float64
		TotalCashback   float64
		TotalPontos     int64
		ClientesAtivos  int64
	}

	db := r.getDB(ctx)
	err := db.Table("transacoes").
		Select(`COUNT(*) AS total_transacoes,
			COALESCE(SUM(valor), 0) AS total_vendas,
			COALESCE(SUM(cashback), 0) AS total_cashback,
			COALESCE(SUM(pontos), 0) AS total_pontos,
			COUNT(DISTINCT usuario_id) AS clientes_ativos`).
		Where("data_transacao >= ?", since.Unix()).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &repositories.TransactionStats{
		TotalTransactions: row.TotalTransacoes,
		TotalSales:        row.TotalVendas,
		TotalCashback:     row.TotalCashback,
		TotalPoints:       row.TotalPontos,
		ActiveCustomers:   row.ClientesAtivos,
	}, nil
}

func (r *TransactionRepository) DeleteAll(ctx context.Context) error {
	db := r.getDB(ctx)
	return db.Exec("DELETE FROM transacoes").Error
}

func (r *TransactionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *TransactionRepository) toModel(tx *entities.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              tx.ID,
		UserID:          tx.UserID,
		EmployeeID:      tx.EmployeeID,
		Date:            tx.Date.Unix(),
		Fuel:            string(tx.Fuel),
		PaymentMethod:   string(tx.PaymentMethod),
		Liters:          tx.Liters,
		Amount:          tx.Amount,
		Cashback:        tx.Cashback,
		Points:          tx.Points,
		CashbackPercent: tx.CashbackPercent,
		Status:          string(tx.Status),
	}
}

func (r *TransactionRepository) toEntity(model *TransactionModel) *entities.Transaction {
	return &entities.Transaction{
		ID:              model.ID,
		UserID:          model.UserID,
		EmployeeID:      model.EmployeeID,
		Date:            time.Unix(model.Date, 0),
		Fuel:            entities.FuelType(model.Fuel),
		PaymentMethod:   entities.PaymentMethod(model.PaymentMethod),
		Liters:          model.Liters,
		Amount:          model.Amount,
		Cashback:        model.Cashback,
		Points:          model.Points,
		CashbackPercent: model.CashbackPercent,
		Status:          entities.TransactionStatus(model.Status),
		CreatedAt:       time.Unix(model.CreatedAt, 0),
	}
}
