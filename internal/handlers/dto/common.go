package dto

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse é o corpo de erro da API: um objeto com o campo erro,
// como no contrato original
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// MessageResponse é o corpo de sucesso mínimo
type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// Erro monta uma resposta de erro traduzida
func Erro(c *gin.Context, key string, params ...map[string]interface{}) ErrorResponse {
	return ErrorResponse{Erro: T(c, key, params...)}
}

// Mensagem monta uma resposta de mensagem traduzida
func Mensagem(c *gin.Context, key string, params ...map[string]interface{}) MessageResponse {
	return MessageResponse{Mensagem: T(c, key, params...)}
}
