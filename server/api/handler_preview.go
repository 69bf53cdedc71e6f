package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/adrianliechti/joborder/pkg/jobspec"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	s, err := h.loadSession(r)

	if err != nil {
		writeError(w, errorCode(err), err)
		return
	}

	if s.Output == nil {
		writeError(w, http.StatusNotFound, errors.New("job order not generated yet"))
		return
	}

	var buf bytes.Buffer

	if err := markdown.Convert([]byte(summary(s)), &buf); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	w.Write([]byte("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Job Order</title></head><body>\n"))
	w.Write(buf.Bytes())
	w.Write([]byte("</body></html>\n"))
}

// summary renders the generated job order as Markdown.
func summary(s *Session) string {
	var sb strings.Builder

	spec := s.Validated

	if spec == nil {
		spec = s.Specification
	}

	fmt.Fprintf(&sb, "# Job Order %s\n\n", cell(spec.InvoiceNumber))
	fmt.Fprintf(&sb, "Source `%s` (%s), template **%s**\n\n", s.Filename, s.DocumentType, cell(s.Template))

	sb.WriteString("| Field | Value |\n|---|---|\n")

	for _, name := range jobspec.Fields {
		value, _ := spec.Field(name)

		if value == "" {
			continue
		}

		fmt.Fprintf(&sb, "| %s | %s |\n", name, cell(value))
	}

	if len(spec.LineItems) > 0 {
		sb.WriteString("\n## Line items\n\n| # | Description | Qty | Size |\n|---|---|---|---|\n")

		for i, item := range spec.LineItems {
			fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", i+1, cell(item.Description), cell(item.Quantity), cell(item.Size))
		}
	}

	return sb.String()
}

func cell(s string) string {
	if s == "" {
		return "-"
	}

	return strings.ReplaceAll(s, "|", "\\|")
}
