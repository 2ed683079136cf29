package entities

import "testing"

func TestPointsForPurchase(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int
	}{
		{"valor inteiro", 50.00, 100},
		{"arredonda para baixo", 50.99, 101},
		{"centavos não geram ponto extra", 0.49, 0},
		{"um real", 1.00, 2},
		{"valor quebrado", 123.45, 246},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointsForPurchase(tt.amount); got != tt.want {
				t.Errorf("PointsForPurchase(%v) = %d, esperava %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestCashbackForPoints(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   float64
	}{
		{"mínimo de conversão", 100, 1.00},
		{"múltiplo exato", 500, 5.00},
		{"quantidade quebrada", 250, 2.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CashbackForPoints(tt.points); got != tt.want {
				t.Errorf("CashbackForPoints(%d) = %v, esperava %v", tt.points, got, tt.want)
			}
		})
	}
}
