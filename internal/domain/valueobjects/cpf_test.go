package valueobjects

import "testing"

func TestNewCPF(t *testing.T) {
	t.Run("aceita CPF com 11 dígitos", func(t *testing.T) {
		cpf, err := NewCPF("12345678901")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if cpf.String() != "12345678901" {
			t.Errorf("esperava '12345678901', obteve '%s'", cpf.String())
		}
	})

	t.Run("remove pontuação antes de validar", func(t *testing.T) {
		cpf, err := NewCPF("123.456.789-01")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if cpf.String() != "12345678901" {
			t.Errorf("esperava '12345678901', obteve '%s'", cpf.String())
		}
	})

	t.Run("rejeita CPF com menos de 11 dígitos", func(t *testing.T) {
		if _, err := NewCPF("123456789"); err == nil {
			t.Error("esperava erro para CPF curto")
		}
	})

	t.Run("rejeita CPF com todos os dígitos iguais", func(t *testing.T) {
		if _, err := NewCPF("11111111111"); err == nil {
			t.Error("esperava erro para dígitos repetidos")
		}
	})

	t.Run("rejeita entrada vazia", func(t *testing.T) {
		if _, err := NewCPF(""); err == nil {
			t.Error("esperava erro para entrada vazia")
		}
	})
}

func TestCPFFromTrusted(t *testing.T) {
	// A conta admin padrão usa um CPF todo zero, que NewCPF rejeita
	cpf := CPFFromTrusted("00000000000")
	if cpf.String() != "00000000000" {
		t.Errorf("esperava '00000000000', obteve '%s'", cpf.String())
	}
}

func TestCPFMasked(t *testing.T) {
	cpf, err := NewCPF("12345678901")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cpf.Masked() != "123***" {
		t.Errorf("esperava '123***', obteve '%s'", cpf.Masked())
	}
}
