package http

import (
	"io"
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

// MultipartForm is a multipart/form-data body: plain fields plus file parts.
type MultipartForm struct {
	Fields map[string]string
	Files  []MultipartFile
}

// MultipartFile is a single file part.
type MultipartFile struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = time.Second
)
