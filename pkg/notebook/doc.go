// Copyright © 2018 One Concern

// Package notebook holds the in-memory model of a Jupyter notebook (nbformat v4)
// and its JSON codec.
//
// Only the fields touched by redaction are decoded: the cell type, source,
// outputs, execution count and metadata. Every other key, at the document
// level or the cell level, is kept as raw JSON and written back untouched.
package notebook
