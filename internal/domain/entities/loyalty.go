package entities

import "math"

const (
	// PointsPerReal é a taxa de acúmulo: R$ 1,00 abastecido = 2 pontos
	PointsPerReal = 2

	// PointsPerRealConverted é a taxa de conversão: 100 pontos = R$ 1,00
	PointsPerRealConverted = 100

	// MinPointsConversion é o mínimo de pontos aceito em uma conversão
	MinPointsConversion = 100
)

// PointsForPurchase calcula os pontos ganhos em um abastecimento.
// O resultado é sempre arredondado para baixo.
func PointsForPurchase(amount float64) int {
	return int(math.Floor(amount * PointsPerReal))
}

// CashbackForPoints calcula o valor em reais gerado por uma conversão
// de pontos.
func CashbackForPoints(points int) float64 {
	return float64(points) / PointsPerRealConverted
}
