package ratelimit

import (
	"sync"
	"time"

	"github.com/postoverde/cashback-backend/internal/domain/ports"
)

type attempt struct {
	count    int
	lastSeen time.Time
}

// MemoryLimiter implementa ports.LoginLimiter com um mapa em memória
// protegido por mutex, chaveado por CPF. O estado não sobrevive a
// reinício do processo nem é compartilhado entre instâncias.
type MemoryLimiter struct {
	mu          sync.Mutex
	attempts    map[string]*attempt
	maxAttempts int
	window      time.Duration

	now func() time.Time
}

// NewMemoryLimiter cria um limiter com o máximo de tentativas e a janela
// deslizante informados.
func NewMemoryLimiter(maxAttempts int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		attempts:    make(map[string]*attempt),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

func (l *MemoryLimiter) Check(cpf string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.attempts[cpf]
	if !ok {
		return 0, false
	}

	now := l.now()

	// Janela expirada: o contador é zerado na próxima falha
	if now.Sub(a.lastSeen) > l.window {
		a.count = 0
		return 0, false
	}

	if a.count >= l.maxAttempts {
		return l.window - now.Sub(a.lastSeen), true
	}

	return 0, false
}

func (l *MemoryLimiter) RegisterFailure(cpf string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.attempts[cpf]
	if !ok {
		a = &attempt{}
		l.attempts[cpf] = a
	}

	now := l.now()
	if now.Sub(a.lastSeen) > l.window {
		a.count = 0
	}

	a.count++
	a.lastSeen = now
}

func (l *MemoryLimiter) Reset(cpf string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, cpf)
}

var _ ports.LoginLimiter = (*MemoryLimiter)(nil)
