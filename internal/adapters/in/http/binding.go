package http

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathUUID binds a UUID path parameter the way generated oapi-codegen
// wrappers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewFieldValidationError("Invalid format for parameter "+name, name)
	}
	return bodyUUID(raw, name)
}

func bodyUUID(raw openapi_types.UUID, field string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewFieldValidationError(field+" is required", field)
	}
	return id, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValidationError("Invalid request body")
	}
	return nil
}

func mustActor(c echo.Context) (Actor, error) {
	actor, ok := actorFrom(c)
	if !ok {
		return Actor{}, errs.NewAuthenticationError("")
	}
	return actor, nil
}
