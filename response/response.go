// Package response turns rendered documents into downloadable HTTP responses.
package response

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

// MIME types of the documents a workbook can be rendered to.
const (
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEPDF  = "application/pdf"
)

// Write sends data as an attachment named filename with the given MIME type.
func Write(w http.ResponseWriter, data []byte, mimeType, filename string) error {
	h := w.Header()
	h.Set("Content-Type", mimeType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	h.Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}
