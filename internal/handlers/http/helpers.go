package http

import (
	errs "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/leadfunnel-backend/internal/domain/errors"
	"github.com/rafabene/leadfunnel-backend/internal/domain/ports"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/dto"
	"github.com/rafabene/leadfunnel-backend/internal/handlers/middleware"
)

// maxBodyBytes limita o corpo de POST/PUT
const maxBodyBytes = 1 << 20

// parseID lê o parâmetro :id; valores não numéricos nunca correspondem a um registro
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidID
	}
	return id, nil
}

// readBody lê o corpo respeitando maxBodyBytes
func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errs.As(err, &tooLarge) {
			verr := &domainerrors.ValidationError{}
			verr.Add("body", "max", "must be at most "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return nil, verr
		}
		return nil, err
	}
	return body, nil
}

// respondInternal registra a causa e responde 500 com mensagem genérica
func respondInternal(c *gin.Context, logger ports.Logger, messageKey string, err error) {
	logger.Error("request failed",
		"request_id", c.GetString(middleware.RequestIDContextKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	dto.Abort(c, dto.InternalErrorResponseI18n(c, messageKey))
}

// respondValidation converte erros de decodificação em 400 com a lista de campos
func respondValidation(c *gin.Context, logger ports.Logger, messageKey string, err error) {
	var verr *domainerrors.ValidationError
	if errs.As(err, &verr) {
		dto.Abort(c, dto.ValidationErrorResponseI18n(c, messageKey, verr.Fields))
		return
	}
	respondInternal(c, logger, messageKey, err)
}
