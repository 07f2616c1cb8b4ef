package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"influencer-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
	"gorm.io/gorm"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeCreated           = 201
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeDatabaseError     = 402
	codeValidationError   = 403
	codeNotFound          = 404
	codeTooManyRequests   = 429
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  interface{}
	Data     interface{}
	Code     int // not the http code
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper whose validator reports fields by their json
// name and translates messages to English.
func NewHTTPHelper() *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		slog.Error("register validator translations", "error", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// BindJSON decodes the request body into dst and validates it. On failure the
// error response is already sent and false is returned.
func (u *HTTPHelper) BindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			u.SendFieldErrors(c, typeErrorFields(typeErr))
			return false
		}
		u.SendBadRequest(c, "Invalid request body", err.Error())
		return false
	}

	if err := u.Validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
		} else {
			u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
		}
		return false
	}
	return true
}

// typeErrorFields reports a mistyped value under its top level json field.
func typeErrorFields(err *json.UnmarshalTypeError) map[string][]string {
	field := strings.SplitN(err.Field, ".", 2)[0]
	if field == "" {
		field = "non_field_errors"
	}
	msg := fmt.Sprintf("Incorrect type. Expected %s, received %s.", err.Type, err.Value)
	return map[string][]string{field: {msg}}
}

// GetStatusCode ...
// Maps a service error to the HTTP status it should produce.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var validationErr *models.ValidationError
	var notFound models.ErrorNotFound
	var unauthorized models.ErrorUnauthorized

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message interface{}, data interface{}, code int, codeType string) {
	res := u.SetResponse(c, textError, message, data, code, codeType)
	u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeBadRequestError, `badRequest`)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	u.SendFieldErrors(c, errorResponse)
}

// SendFieldErrors ...
// Send a field -> messages map as a validation error.
func (u *HTTPHelper) SendFieldErrors(c *gin.Context, fields map[string][]string) {
	u.SendError(c, fields, u.EmptyJsonMap(), codeValidationError, `validationError`)
}

// SendDatabaseError ...
// Send database error response to consumers.
func (u *HTTPHelper) SendDatabaseError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeDatabaseError, `databaseError`)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendTooManyRequests ...
func (u *HTTPHelper) SendTooManyRequests(c *gin.Context, message string) {
	u.SendError(c, message, u.EmptyJsonMap(), codeTooManyRequests, `tooManyRequests`)
}

// SendServiceError ...
// Translate an error returned by a service into the matching response.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		u.SendFieldErrors(c, validationErr.Fields)
		return
	}

	switch u.GetStatusCode(err) {
	case http.StatusNotFound:
		u.SendNotFoundError(c, "Not found.", u.EmptyJsonMap())
	case http.StatusUnauthorized:
		u.SendUnauthorizedError(c, err.Error(), u.EmptyJsonMap())
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		u.SendDatabaseError(c, "internal server error", u.EmptyJsonMap())
	}
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)
	u.SendResponse(res)
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	res := u.SetResponse(c, textOk, message, data, codeCreated, `created`)
	u.SendResponse(res)
}

// SendNoContent ...
func (u *HTTPHelper) SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) {
	if msg, ok := res.Message.(string); ok && len(msg) == 0 {
		res.Message = `success`
	}

	res.C.JSON(httpStatus(res.Code), map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

func httpStatus(code int) int {
	switch code {
	case codeDatabaseError:
		return http.StatusInternalServerError
	case codeValidationError:
		return http.StatusBadRequest
	default:
		return code
	}
}
