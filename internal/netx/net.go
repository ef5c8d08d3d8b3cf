// Package netx builds multipart/form-data bodies for the API client.
package netx

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Form accumulates multipart fields. The first write error sticks and is
// reported by Encode; later calls become no-ops.
type Form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func NewForm() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text part. Repeating a name produces repeated parts,
// which is how list values (e.g. "liked") are sent.
func (f *Form) Field(name, value string) *Form {
	if f.err != nil {
		return f
	}
	f.err = f.w.WriteField(name, value)
	return f
}

// File appends a file part with the given file name.
func (f *Form) File(field, filename string, data []byte) *Form {
	if f.err != nil {
		return f
	}
	part, err := f.w.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = part.Write(data)
	return f
}

// Encode closes the form and returns the body with its Content-Type.
func (f *Form) Encode() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.w.Close(); err != nil {
		return nil, "", err
	}
	return &f.buf, f.w.FormDataContentType(), nil
}
