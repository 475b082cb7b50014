// Package httputil provides request binding and response helpers for the
// API controllers.
package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to the struct passed in.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// GetBodyFields returns the names of the resource's fields that are set
// in the request body. This is used for partial updates, where absent
// fields must not be overwritten with zero values.
//
// This function reads and copies the request body, it must always be
// called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	return structFields(reflect.Indirect(reflect.ValueOf(resource)), mapBody), nil
}

// structFields collects the names of the struct's fields that appear in
// the body, descending into embedded structs since their fields are
// flattened in JSON.
func structFields(val reflect.Value, mapBody map[string]any) []any {
	var bodyFields []any
	for i := 0; i < val.NumField(); i++ {
		structField := val.Type().Field(i)

		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			bodyFields = append(bodyFields, structFields(val.Field(i), mapBody)...)
			continue
		}

		if _, ok := mapBody[structField.Tag.Get("json")]; ok {
			bodyFields = append(bodyFields, structField.Name)
		}
	}

	return bodyFields
}
