package handlers

import (
	"geotjs/internal/core/apperror"
	"geotjs/internal/core/model"
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/xmlcodec"
)

// ErrorMappings translates the model and codec sentinels for the error middleware.
func ErrorMappings() []apperror.Mapping {
	return []apperror.Mapping{
		{Target: tjs10.ErrInvalidClassifier, Build: apperror.NewInvalidClassifier},
		{Target: tjs10.ErrInvalidEnumerator, Build: apperror.NewInvalidEnumerator},
		{Target: tjs10.ErrUnknownElement, Build: apperror.NewInvalidDocument},
		{Target: tjs10.ErrNoStandaloneForm, Build: func(err error) *apperror.AppError {
			return apperror.NewInvalidInput(err.Error()).WithCause(err)
		}},
		{Target: xmlcodec.ErrMalformed, Build: apperror.NewInvalidDocument},
		{Target: model.ErrTypeMismatch, Build: apperror.NewTypeMismatch},
		{Target: model.ErrFeatureNotFound, Build: func(err error) *apperror.AppError {
			return apperror.NewNotFound("feature", err.Error()).WithCause(err)
		}},
	}
}
