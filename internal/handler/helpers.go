package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"iego3d/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

const msgFaltanCampos = "Faltan campos"

// bindAndValidate binds the JSON body and runs the validator tags.
// Failures are answered with 400: invalido when the body cannot be decoded,
// "Faltan campos" plus the offending fields when a tag fails.
// The caller must return immediately when it reports false.
func bindAndValidate(c *gin.Context, req interface{}, invalido string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(invalido))
		return false
	}
	if fields, ok := validar(req); !ok {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(msgFaltanCampos, fields))
		return false
	}
	return true
}

// bindOK is bindAndValidate for the endpoints that report every failure as
// 200 {ok:false, error}.
func bindOK(c *gin.Context, req interface{}, invalido string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusOK, apierror.New(invalido))
		return false
	}
	if _, ok := validar(req); !ok {
		c.JSON(http.StatusOK, apierror.New(invalido))
		return false
	}
	return true
}

func validar(req interface{}) (map[string]string, bool) {
	err := validate.Struct(req)
	if err == nil {
		return nil, true
	}
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields, false
}

// idParam reads the :id path segment. gin routes never match an empty
// segment, so only malformed values fail.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("ID inválido"))
		return 0, false
	}
	return id, true
}

// fail answers with the status that matches the error kind.
func fail(c *gin.Context, err error) {
	report(c, err)
	c.JSON(apierror.Status(err), apierror.New(apierror.Message(err)))
}

// failOK answers 200 {ok:false, error} whatever the error kind.
func failOK(c *gin.Context, err error) {
	report(c, err)
	c.JSON(http.StatusOK, apierror.New(apierror.Message(err)))
}

// report hands persistence failures to the error middleware for logging.
func report(c *gin.Context, err error) {
	if apierror.KindOf(err) == apierror.KindPersistence || apierror.KindOf(err) == apierror.KindUnknown {
		_ = c.Error(err)
	}
}
