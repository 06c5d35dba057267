package response

import (
	"encoding/json"
	"kmc/shared/constant"
	"kmc/shared/failure"
	"kmc/shared/logger"
	"mime"
	"net/http"
	"strconv"
)

// Data, Error and Message are the three envelopes every endpoint answers with.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the status carried by a failure.Failure, 500 otherwise.
func WithError(writer http.ResponseWriter, err error) {
	message := err.Error()

	write(writer, failure.GetCode(err), Error{Error: &message})
}

// WithFile sends data as a download. Non-ASCII file names are encoded per RFC 2231.
func WithFile(writer http.ResponseWriter, fileName, contentType string, data []byte) {
	header := writer.Header()
	header.Set(constant.RequestHeaderContentType, contentType)
	header.Set(constant.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	header.Set(constant.HeaderContentLength, strconv.Itoa(len(data)))

	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(data); err != nil {
		logger.ErrorWithStack(err)
	}
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
