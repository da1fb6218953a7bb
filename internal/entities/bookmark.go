package entities

// Record is a single bookmark in its normalized form. Absent fields are
// empty strings so printers never need to special-case them.
type Record struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// EmitFunc receives records one at a time as an extractor produces them.
// Returning an error stops the extractor, which returns that error unchanged.
type EmitFunc func(Record) error

type Kind string

const (
	KindSafariPlist Kind = "safari_plist"
	KindFirefoxDB   Kind = "firefox_db"
	KindChromeJSON  Kind = "chrome_json"
	KindIEFavorites Kind = "ie_favorites"
	KindPlainText   Kind = "plain_text"
	KindMarkdown    Kind = "markdown"
)

// DisplayName returns a human readable name for log and error messages.
func (k Kind) DisplayName() string {
	switch k {
	case KindSafariPlist:
		return "Safari property list"
	case KindFirefoxDB:
		return "Firefox places database"
	case KindChromeJSON:
		return "Chrome bookmarks file"
	case KindIEFavorites:
		return "Internet Explorer favorites"
	case KindPlainText:
		return "plain text"
	case KindMarkdown:
		return "markdown"
	default:
		return string(k)
	}
}

// Source is a classified input path. It is built once per path and handed
// to exactly one extractor.
type Source struct {
	Path        string
	Kind        Kind
	IsDirectory bool
}

// Capability names an external collaborator an extractor depends on.
type Capability string

const (
	CapabilityPlistDecoder     Capability = "plist-decoder"
	CapabilitySQLite           Capability = "sqlite3"
	CapabilityJSONDecoder      Capability = "json-decoder"
	CapabilityINIParser        Capability = "ini-parser"
	CapabilityDirectoryWalker  Capability = "directory-walker"
	CapabilityURIMatcher       Capability = "uri-matcher"
	CapabilityWindowsFavorites Capability = "windows-favorites"
)
