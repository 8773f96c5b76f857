// Package webdoc fetches a remote document by URL and produces a
// normalized, size-bounded textual representation for consumption by
// automated agents. HTML pages are reduced to their main readable
// content and converted to markdown, PDF documents are reduced to
// linear page text, and everything else passes through unchanged with
// a note about its content type.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g.,
// trafilatura/, htmltomarkdown/, fitz/).
package webdoc
