package ports

import "time"

// LoginLimiter controla tentativas de login por CPF dentro de uma janela
// deslizante. A implementação padrão mantém o estado em memória do
// processo (reiniciar o servidor zera os bloqueios); a interface permite
// trocar por um armazenamento com TTL compartilhado entre instâncias.
type LoginLimiter interface {
	// Check retorna o tempo restante de bloqueio quando o CPF está
	// bloqueado. Um retorno zero significa que a tentativa é permitida.
	Check(cpf string) (retryAfter time.Duration, limited bool)

	// RegisterFailure registra uma tentativa malsucedida para o CPF.
	RegisterFailure(cpf string)

	// Reset limpa o contador do CPF após um login bem-sucedido.
	Reset(cpf string)
}
