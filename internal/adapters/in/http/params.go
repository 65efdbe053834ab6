package http

import (
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func queryString(c echo.Context, name string, required bool) (string, error) {
	var value string
	if err := runtime.BindQueryParameter("form", true, required, name, c.QueryParams(), &value); err != nil {
		if required && c.QueryParam(name) == "" {
			return "", errs.NewValueIsRequiredErrorWithCause(name, err)
		}
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	var value bool
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
