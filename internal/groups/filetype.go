package groups

// FileType is a coarse file category.
type FileType int

// File categories.
const (
	Other FileType = iota
	Image
	Video
	Document
	Executable
	Archive
	Audio
	Code
	GenomicData
)

//nolint:gochecknoglobals // Lookup table
var fileTypeNames = [...]string{
	Other:       "Other",
	Image:       "Image",
	Video:       "Video",
	Document:    "Document",
	Executable:  "Executable",
	Archive:     "Archive",
	Audio:       "Audio",
	Code:        "Code",
	GenomicData: "GenomicData",
}

func (t FileType) String() string {
	if t < 0 || int(t) >= len(fileTypeNames) {
		return fileTypeNames[Other]
	}

	return fileTypeNames[t]
}

// Classify returns the category of a lowercase extension given without its dot.
// Unknown and empty extensions are Other.
func Classify(ext string) FileType {
	if t, ok := extensionTypes[ext]; ok {
		return t
	}

	return Other
}

// extensionTypes is read-only after package initialisation.
//
//nolint:gochecknoglobals // Lookup table
var extensionTypes = map[string]FileType{
	"jpg": Image, "jpeg": Image, "jpegxl": Image, "png": Image, "tiff": Image, "raw": Image,
	"nef": Image, "webp": Image, "psd": Image, "heic": Image, "gif": Image, "avif": Image,
	"dng": Image, "svg": Image, "bmp": Image,

	"mp4": Video, "mkv": Video, "avi": Video, "webm": Video, "flv": Video, "f4v": Video,
	"gifv": Video, "mpeg": Video, "mpg": Video, "mov": Video, "wmv": Video, "3gp": Video,
	"aaf": Video, "avchd": Video,

	"pdf": Document, "txt": Document, "docx": Document, "doc": Document, "xlsx": Document,
	"xls": Document, "csv": Document, "tsv": Document, "md": Document, "odt": Document,
	"fodt": Document, "pages": Document, "rtf": Document, "tex": Document, "latex": Document,
	"epub": Document, "kpub": Document, "ppt": Document, "pptx": Document, "otp": Document,
	"odp": Document, "pot": Document, "pps": Document, "bib": Document, "log": Document,
	"tmp": Document, "temp": Document,

	"py": Code, "pyc": Code, "pyo": Code, "xml": Code, "html": Code, "htm": Code, "htmx": Code,
	"xhtml": Code, "xht": Code, "css": Code, "js": Code, "jsx": Code, "json": Code, "yaml": Code,
	"toml": Code, "ts": Code, "c": Code, "cpp": Code, "h": Code, "rs": Code, "r": Code, "go": Code,
	"zig": Code, "awk": Code, "cs": Code, "csproj": Code, "ici": Code, "ipynb": Code, "kt": Code,
	"lua": Code, "php": Code, "pl": Code, "pm": Code, "ps1": Code, "sh": Code, "fish": Code,
	"asm": Code, "d": Code, "vim": Code, "java": Code, "lisp": Code, "php3": Code, "php4": Code,
	"php5": Code, "phps": Code, "vb": Code, "sql": Code,

	"exe": Executable, "apk": Executable, "o": Executable, "so": Executable, "app": Executable,
	"dll": Executable, "elf": Executable, "jar": Executable, "lib": Executable,

	"mp3": Audio, "aiff": Audio, "aif": Audio, "aifc": Audio, "wav": Audio, "flac": Audio,
	"wma": Audio, "dts": Audio, "ac3": Audio, "aac": Audio, "ots": Audio, "ogg": Audio,

	"gz": Archive, "gzip": Archive, "zst": Archive, "zstd": Archive, "zip": Archive, "7z": Archive,
	"7zip": Archive, "rar": Archive, "tar": Archive, "bin": Archive, "dat": Archive, "bz2": Archive,
	"pak": Archive, "par": Archive, "pax": Archive, "sqlite": Archive, "sq": Archive, "vbox": Archive,

	"bam": GenomicData, "bai": GenomicData, "sam": GenomicData, "bed": GenomicData,
	"gtf": GenomicData, "gtf2": GenomicData, "gtf3": GenomicData, "gff": GenomicData,
	"gff2": GenomicData, "gff3": GenomicData, "bedpe": GenomicData, "cram": GenomicData,
	"sra": GenomicData, "fastq": GenomicData, "fasta": GenomicData, "fa": GenomicData,
	"fq": GenomicData, "fasterq": GenomicData, "embl": GenomicData, "genbank": GenomicData,
	"pdb": GenomicData, "ncbi": GenomicData, "maf": GenomicData, "nwk": GenomicData,
	"phd": GenomicData, "vcf": GenomicData, "pod5": GenomicData,
}
