package extraction

import "fmt"

// UnsupportedFormatError indicates the file extension is not one of the
// supported résumé formats.
type UnsupportedFormatError struct {
	Filename string
	Ext      string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s: supported formats are pdf, doc, docx, txt", e.Ext, e.Filename)
}

// EmptyInputError indicates a zero-length payload.
type EmptyInputError struct {
	Filename string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("file %s is empty", e.Filename)
}

// ExtractionError indicates parsing ran but produced no usable text.
type ExtractionError struct {
	Filename string
	Reason   string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error extracting text from %s: %s: %v", e.Filename, e.Reason, e.Cause)
	}
	return fmt.Sprintf("error extracting text from %s: %s", e.Filename, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
