package model

// Asset is a named binary file attached to a release. Names within one
// release are not necessarily unique.
type Asset struct {
	ID   int64  // Platform-assigned asset identifier
	Name string // Asset file name
}

// Release is a published, tagged snapshot of a repository. Fetched once
// per run and treated as read-only afterward.
type Release struct {
	TagName    string  // Release tag name
	Name       string  // Release display name
	Body       string  // Release notes text
	Assets     []Asset // Attached assets in platform order
	ArchiveURL string  // Source archive (zipball) URL for the tag
}
