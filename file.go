package formdata

// File marks a leaf as a file upload. The traversal never opens the path;
// formatters receive it as-is and decide how a file part is represented. The
// url-encoded formatter drops file leaves entirely, as the encoding cannot
// carry them.
type File struct {
	Path string
}
