package entities

import "time"

// Configuration é um par chave/valor de configuração do sistema,
// semeado na inicialização e raramente alterado.
type Configuration struct {
	ID          string
	Key         string
	Value       string
	Description string
	UpdatedAt   time.Time
}

// Chaves de configuração conhecidas
const (
	ConfigCashbackGasolina = "cashback_gasolina"
	ConfigCashbackEtanol   = "cashback_etanol"
	ConfigCashbackDiesel   = "cashback_diesel"
	ConfigCashbackGNV      = "cashback_gnv"
	ConfigMinPurchase      = "valor_minimo_compra"
)

// DefaultConfigurations retorna as configurações padrão semeadas na
// inicialização e no reset administrativo.
func DefaultConfigurations() []Configuration {
	return []Configuration{
		{Key: ConfigCashbackGasolina, Value: "10.00", Description: "Porcentagem de cashback para gasolina"},
		{Key: ConfigCashbackEtanol, Value: "12.00", Description: "Porcentagem de cashback para etanol"},
		{Key: ConfigCashbackDiesel, Value: "8.00", Description: "Porcentagem de cashback para diesel"},
		{Key: ConfigCashbackGNV, Value: "15.00", Description: "Porcentagem de cashback para GNV"},
		{Key: ConfigMinPurchase, Value: "20.00", Description: "Valor mínimo para gerar cashback"},
	}
}
