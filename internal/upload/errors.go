package upload

import "errors"

var (
	ErrNoFileSelected   = errors.New("upload: no file selected")
	ErrInvalidExtension = errors.New("upload: only .xlsx files are accepted")
	ErrInvalidWorkbook  = errors.New("upload: file is not a readable workbook")
	ErrFileTooLarge     = errors.New("upload: file exceeds the size limit")
	ErrDuplicateSource  = errors.New("upload: more than one file for the same source")
	ErrInvalidSource    = errors.New("upload: source must be myAffiliate or dynamicWorks")
	ErrFileIDRequired   = errors.New("upload: file id is required")
	ErrLoadStoredFiles  = errors.New("upload: failed to load stored files")
	ErrProgressNotFound = errors.New("upload: unknown upload id")
	ErrHistoryDisabled  = errors.New("upload: upload history is not enabled")
	ErrInvalidRecord    = errors.New("upload: record is missing required fields")
)
