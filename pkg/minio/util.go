package minio

import (
	"strings"

	"partner-dashboard-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	switch {
	case cfg == nil:
		return invalid("config is required")
	case cfg.Endpoint == "":
		return invalid("endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return invalid("access key and secret key are required")
	}
	if err := validateBucketName(cfg.Bucket); err != nil {
		return err
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return invalid("request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	switch {
	case req.ObjectName == "" || req.ObjectName != ObjectName(req.ObjectName):
		return invalid("object name must be a non-empty relative key")
	case req.Reader == nil:
		return invalid("reader is required")
	case req.Size <= 0:
		return invalid("size must be positive")
	case req.Size > MaxObjectSize:
		return invalid("object is too large")
	case req.ContentType == "":
		return invalid("content type is required")
	}
	return nil
}

// validateBucketName checks the S3 naming rules that matter for MinIO.
func validateBucketName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return invalid("bucket name must be 3-63 characters")
	}
	if name[0] == '-' || name[len(name)-1] == '-' || strings.Contains(name, "--") {
		return invalid("bucket name has misplaced hyphens")
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return invalid("bucket name allows only lowercase letters, digits and hyphens")
		}
	}
	return nil
}

// ObjectName joins path segments into an object key, dropping empty parts and stray slashes.
func ObjectName(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.ReplaceAll(p, "\\", "/"), "/")
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}
