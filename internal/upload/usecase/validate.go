package usecase

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"

	"github.com/xuri/excelize/v2"
)

func (uc *implUseCase) validateFiles(files []upload.File) error {
	if len(files) == 0 {
		return upload.ErrNoFileSelected
	}
	seen := make(map[model.DataSource]struct{}, len(files))
	for _, f := range files {
		if !f.Source.IsUploadSource() {
			return upload.ErrInvalidSource
		}
		if _, dup := seen[f.Source]; dup {
			return upload.ErrDuplicateSource
		}
		seen[f.Source] = struct{}{}

		if err := uc.validateFile(f); err != nil {
			return fmt.Errorf("%s: %w", f.Filename, err)
		}
	}
	return nil
}

func (uc *implUseCase) validateFile(f upload.File) error {
	if !strings.EqualFold(filepath.Ext(f.Filename), upload.XLSXExtension) {
		return upload.ErrInvalidExtension
	}
	if uc.maxSize > 0 && int64(len(f.Content)) > uc.maxSize {
		return upload.ErrFileTooLarge
	}
	return checkWorkbook(f.Content)
}

// checkWorkbook opens the spreadsheet and requires at least one sheet.
func checkWorkbook(content []byte) error {
	wb, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("%w: %v", upload.ErrInvalidWorkbook, err)
	}
	defer wb.Close()

	if len(wb.GetSheetList()) == 0 {
		return upload.ErrInvalidWorkbook
	}
	return nil
}
