package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context decorates gin's context with a request-scoped context.Context and
// collected param/query parse errors.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []FieldError
	queryErrs []FieldError
}

// BindFunc binds the JSON/form body into v and checks that the named struct
// fields are present (non-nil pointers, non-zero values).
func (c *Context) BindFunc(v interface{}, required ...string) error {
	if err := c.ShouldBind(v); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request body"), http.StatusBadRequest)
	}

	var fields []FieldError
	rv := reflect.ValueOf(v).Elem()
	for _, name := range required {
		f := rv.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		if f.Kind() == reflect.Ptr && f.IsNil() || f.Kind() != reflect.Ptr && f.IsZero() {
			fields = append(fields, FieldError{Field: name, Error: "required"})
		}
	}
	if len(fields) > 0 {
		return &Error{
			Err:    errors.New("required fields are missing"),
			Status: http.StatusBadRequest,
			Fields: fields,
		}
	}

	return nil
}

// GetParam parses the named path parameter as the given kind. Parse failures
// are collected and reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, FieldError{Field: name, Error: "must be an integer"})
			return 0
		}
		return n
	case reflect.String:
		return value
	default:
		c.paramErrs = append(c.paramErrs, FieldError{Field: name, Error: fmt.Sprintf("unsupported kind %s", kind)})
		return nil
	}
}

// GetQueryFunc parses the named query parameter as the given kind, returning
// a typed pointer (nil when the parameter is absent).
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, FieldError{Field: name, Error: "must be an integer"})
			return (*int)(nil)
		}
		return &n
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, FieldError{Field: name, Error: "must be a boolean"})
			return (*bool)(nil)
		}
		return &b
	case reflect.String:
		if !ok {
			return (*string)(nil)
		}
		return &value
	default:
		c.queryErrs = append(c.queryErrs, FieldError{Field: name, Error: fmt.Sprintf("unsupported kind %s", kind)})
		return nil
	}
}

// ValidParam reports any path-parameter parse failures collected so far.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return &Error{
		Err:    errors.New("invalid path parameters"),
		Status: http.StatusBadRequest,
		Fields: c.paramErrs,
	}
}

// ValidQuery reports any query-parameter parse failures collected so far.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return &Error{
		Err:    errors.New("invalid query parameters"),
		Status: http.StatusBadRequest,
		Fields: c.queryErrs,
	}
}

// Respond writes data as JSON with the given status.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes the error as JSON. *web.Error decides the status;
// anything else is an internal error.
func (c *Context) RespondError(err error) error {
	if webErr, ok := IsRequestError(err); ok {
		body := map[string]interface{}{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			body["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, body)
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	})
	return nil
}
