package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/postoverde/cashback-backend/internal/handlers/middleware"
	"github.com/postoverde/cashback-backend/internal/infrastructure/i18n"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.too_many_attempts", map[string]interface{}{"Minutes": 12})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		// Fallback: retornar a chave se serviço não estiver disponível
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	lang := GetLanguage(c)

	return service.T(lang, key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "pt-BR" // Fallback
	}

	langStr, ok := lang.(string)
	if !ok {
		return "pt-BR"
	}

	return langStr
}
