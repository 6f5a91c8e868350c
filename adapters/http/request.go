package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
	"github.com/khoahotran/portfolio-cms/pkg/apperror"
)

// bindObject reads a JSON object body. An empty body is an empty object.
func bindObject(c *gin.Context) (content.Object, error) {
	obj := content.Object{}
	if err := decodeBody(c, &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		obj = content.Object{}
	}
	return obj, nil
}

// bindObjectList reads a JSON array of objects.
func bindObjectList(c *gin.Context) ([]content.Object, error) {
	list := []content.Object{}
	if err := decodeBody(c, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []content.Object{}
	}
	return list, nil
}

func decodeBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return nil
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperror.NewTooLarge(tooLarge.Limit, err)
		}
		return apperror.NewInvalidInput("request body is not valid JSON", err)
	}
	return nil
}
