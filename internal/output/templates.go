package output

import (
	"strings"
	"text/template"
)

// docTemplate is the per-source RST document. The title is the source path
// relative to the source root; Overview and Public Interface sections are
// optional, the Implementation section is always present.
var docTemplate = template.Must(template.New("doc").Funcs(template.FuncMap{
	"underline": func(s string) string {
		return strings.Repeat("-", len(s))
	},
}).Parse(`{{.RelativePath}}
{{underline .RelativePath}}
{{- if .Overview}}

Overview
========

{{.Overview}}
{{- end}}
{{- if .PublicInterfaceFiles}}

Public Interface
================

.. c:autodoc:: {{.PublicInterfaceFiles}}
   :clang: {{.ClangOptions}}
{{- end}}

Implementation
==============

.. c:autodoc:: {{.File}}
   :clang: {{.ClangOptions}}
`))

// indexHeader opens the api.rst master index; one indented document path
// per processed source follows it.
const indexHeader = `C Code Reference
----------------

.. toctree::
   :maxdepth: 2
   :caption: Sources

`

// docContext is the data handed to docTemplate.
type docContext struct {
	RelativePath         string
	Overview             string
	PublicInterfaceFiles string
	ClangOptions         string
	File                 string
}
