package handler

import (
	"net/http"
	"rpbank/common"
)

// ErrorHandlingMiddleware adapts a handler that returns *common.AppError to
// http.HandlerFunc, sending the error when one is returned.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
