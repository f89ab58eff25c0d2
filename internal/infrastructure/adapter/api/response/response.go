package response

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// StatusSuccess is the application status of every successful response
const StatusSuccess = 0

// MessageInvalidRequest is reported when a body can't be decoded at all
const MessageInvalidRequest = "Format request tidak valid"

type outcome struct {
	httpStatus int
	message    string
}

// kinds maps every error kind to its HTTP status and caller-facing message
var kinds = map[errs.Kind]outcome{
	errs.KindEmailTaken:          {http.StatusBadRequest, "Email sudah terdaftar"},
	errs.KindValidation:          {http.StatusBadRequest, MessageInvalidRequest},
	errs.KindInvalidCredentials:  {http.StatusUnauthorized, "Username atau password salah"},
	errs.KindNotFound:            {http.StatusNotFound, "User tidak ditemukan"},
	errs.KindInsufficientBalance: {http.StatusBadRequest, "Saldo tidak mencukupi"},
	errs.KindUnauthenticated:     {http.StatusUnauthorized, "Token tidak tidak valid atau kadaluwarsa"},
	errs.KindRateLimited:         {http.StatusTooManyRequests, "Terlalu banyak permintaan"},
	errs.KindInternal:            {http.StatusInternalServerError, "Internal Server Error"},
}

// validationMessages refines the message of validation sentinels
var validationMessages = []struct {
	err     error
	message string
}{
	{errs.ErrInvalidAmount, "Top Up Amount tidak valid"},
	{errs.ErrAmountOverflow, "Jumlah top up terlalu besar"},
	{errs.ErrServiceNotFound, "Service atau Layanan tidak ditemukan"},
	{errs.ErrInvalidImageFormat, "Format Image tidak sesuai"},
}

// Describe resolves the HTTP status, application status and message for err.
// Internal error text is never part of the message.
func Describe(err error) (int, int, string) {
	kind := errs.KindOf(err)
	o, ok := kinds[kind]
	if !ok {
		kind = errs.KindInternal
		o = kinds[kind]
	}

	if kind == errs.KindValidation {
		var ve *errs.ValidationError
		if errors.As(err, &ve) {
			return o.httpStatus, int(kind), ve.Message
		}
		for _, vm := range validationMessages {
			if errors.Is(err, vm.err) {
				return o.httpStatus, int(kind), vm.message
			}
		}
	}
	return o.httpStatus, int(kind), o.message
}

// Success writes a 200 envelope with status 0
func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error records err on the context for the request logger and aborts with its envelope
func Error(c *gin.Context, err error) {
	if err == nil {
		err = errs.ErrInternalServer
	}
	_ = c.Error(err)

	httpStatus, status, message := Describe(err)
	c.AbortWithStatusJSON(httpStatus, dto.Response{
		Status:  status,
		Message: message,
		Data:    nil,
	})
}
