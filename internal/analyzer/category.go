package analyzer

// Category is the closed set of content classifications a file can
// receive. The zero value is not valid; unclassifiable files get
// CategoryOther.
type Category string

// All categories, as they appear in report and JSON output.
const (
	CategoryText        Category = "text"
	CategoryImage       Category = "image"
	CategoryExecutable  Category = "executable"
	CategoryArchive     Category = "archive"
	CategoryDocument    Category = "document"
	CategoryVideo       Category = "video"
	CategoryAudio       Category = "audio"
	CategoryConfig      Category = "config"
	CategoryApplication Category = "application"
	CategoryOther       Category = "other"
)

// Title returns the category with its first letter upper-cased, for
// table display.
func (c Category) Title() string {
	if c == "" {
		return ""
	}

	s := string(c)

	return string(s[0]&^0x20) + s[1:]
}

// signature pairs a magic-byte prefix with the category it implies.
type signature struct {
	prefix   []byte
	category Category
}

// signatures is matched first-match-wins in declaration order.
// Ordering is load-bearing: a longer prefix that shares a stem with a
// shorter one must be declared before it.
//
//nolint:gochecknoglobals // Fixed lookup table
var signatures = []signature{
	// Images
	{[]byte{0xFF, 0xD8, 0xFF}, CategoryImage},       // JPEG
	{[]byte("\x89PNG\r\n\x1a\n"), CategoryImage},    // PNG
	{[]byte("GIF87a"), CategoryImage},               // GIF87a
	{[]byte("GIF89a"), CategoryImage},               // GIF89a
	{[]byte("BM"), CategoryImage},                   // BMP
	{[]byte{0x00, 0x00, 0x01, 0x00}, CategoryImage}, // ICO

	// Archives
	{[]byte("PK\x03\x04"), CategoryArchive}, // ZIP
	{[]byte("PK\x05\x06"), CategoryArchive}, // ZIP (empty)
	{[]byte("PK\x07\x08"), CategoryArchive}, // ZIP (spanned)
	{[]byte{0x1F, 0x8B}, CategoryArchive},   // gzip
	{[]byte("BZh"), CategoryArchive},        // bzip2

	// Documents
	{[]byte("%PDF"), CategoryDocument},                                          // PDF
	{[]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, CategoryDocument}, // MS Office CFB

	// Executables
	{[]byte("MZ"), CategoryExecutable},                   // PE/DOS
	{[]byte{0x7F, 'E', 'L', 'F'}, CategoryExecutable},    // ELF
	{[]byte{0xFE, 0xED, 0xFA, 0xCE}, CategoryExecutable}, // Mach-O 32-bit
	{[]byte{0xFE, 0xED, 0xFA, 0xCF}, CategoryExecutable}, // Mach-O 64-bit
	{[]byte{0xCA, 0xFE, 0xBA, 0xBE}, CategoryExecutable}, // Mach-O universal
	{[]byte{0xCE, 0xFA, 0xED, 0xFE}, CategoryExecutable}, // Mach-O 32-bit reverse
	{[]byte{0xCF, 0xFA, 0xED, 0xFE}, CategoryExecutable}, // Mach-O 64-bit reverse

	// Audio. RIFF is resolved by its subtype in DetectSignature and
	// falls through when the subtype is neither WAVE nor AVI.
	{[]byte("ID3"), CategoryAudio},        // MP3 ID3v2
	{[]byte{0xFF, 0xFB}, CategoryAudio},   // MP3
	{[]byte("OggS"), CategoryAudio},       // OGG
	{[]byte("RIFF"), CategoryAudio},       // WAV container
	{[]byte("fLaC"), CategoryAudio},       // FLAC
}

// extensionCategories maps lowercase extensions (dot included) to
// their category. Consulted when signature detection is disabled or
// inconclusive.
//
//nolint:gochecknoglobals // Fixed lookup table
var extensionCategories = map[string]Category{
	// Text
	".txt": CategoryText, ".md": CategoryText, ".py": CategoryText,
	".js": CategoryText, ".html": CategoryText, ".css": CategoryText,
	".json": CategoryText, ".xml": CategoryText, ".csv": CategoryText,
	".log": CategoryText,

	// Images
	".jpg": CategoryImage, ".jpeg": CategoryImage, ".png": CategoryImage,
	".gif": CategoryImage, ".bmp": CategoryImage, ".svg": CategoryImage,
	".ico": CategoryImage, ".webp": CategoryImage,

	// Executables
	".exe": CategoryExecutable, ".bin": CategoryExecutable,
	".sh": CategoryExecutable, ".bat": CategoryExecutable,
	".com": CategoryExecutable, ".msi": CategoryExecutable,

	// Archives
	".zip": CategoryArchive, ".tar": CategoryArchive, ".gz": CategoryArchive,
	".rar": CategoryArchive, ".7z": CategoryArchive, ".bz2": CategoryArchive,
	".xz": CategoryArchive,

	// Documents
	".pdf": CategoryDocument, ".doc": CategoryDocument, ".docx": CategoryDocument,
	".xls": CategoryDocument, ".xlsx": CategoryDocument, ".ppt": CategoryDocument,
	".pptx": CategoryDocument,

	// Video
	".mp4": CategoryVideo, ".avi": CategoryVideo, ".mkv": CategoryVideo,
	".mov": CategoryVideo, ".wmv": CategoryVideo, ".flv": CategoryVideo,
	".webm": CategoryVideo,

	// Audio
	".mp3": CategoryAudio, ".wav": CategoryAudio, ".flac": CategoryAudio,
	".aac": CategoryAudio, ".ogg": CategoryAudio, ".wma": CategoryAudio,

	// Config
	".conf": CategoryConfig, ".cfg": CategoryConfig, ".ini": CategoryConfig,
	".yaml": CategoryConfig, ".yml": CategoryConfig, ".toml": CategoryConfig,
}
