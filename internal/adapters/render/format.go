package render

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

var contentTypes = map[string]string{
	FormatSVG: "image/svg+xml",
	FormatPNG: "image/png",
	FormatPDF: "application/pdf",
}

// ContentType returns the MIME type of format, or "" if it is unknown.
func ContentType(format string) string {
	return contentTypes[format]
}
