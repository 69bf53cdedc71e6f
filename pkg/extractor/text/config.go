package text

var SupportedExtensions = []string{
	".txt",
	".text",
	".csv",
	".md",
}

var SupportedMimeTypes = []string{
	"text/plain",
	"text/markdown",
	"text/csv",
}
